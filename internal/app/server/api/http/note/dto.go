package note

import (
	"notekeeper/internal/domain/note"
)

type noteRequest struct {
	Title           string   `json:"title" minLength:"1" doc:"Заголовок заметки"`
	Content         string   `json:"content" doc:"Текст заметки"`
	Tags            []string `json:"tags,omitempty" maxItems:"9" doc:"Теги, не более девяти"`
	BackgroundColor string   `json:"backgroundColor,omitempty" doc:"Цвет фона в формате #rrggbb"`
	IsArchived      bool     `json:"isArchived,omitempty"`
	IsTrashed       bool     `json:"isTrashed,omitempty"`
}

func (r noteRequest) fields() note.Fields {
	return note.Fields{
		Title:           r.Title,
		Content:         r.Content,
		Tags:            r.Tags,
		BackgroundColor: r.BackgroundColor,
		IsArchived:      r.IsArchived,
		IsTrashed:       r.IsTrashed,
	}
}

type createInput struct {
	Body noteRequest
}

type updateInput struct {
	ID   string `path:"id" doc:"ID заметки"`
	Body noteRequest
}

type deleteInput struct {
	ID string `path:"id" doc:"ID заметки"`
}

type searchInput struct {
	Query string `query:"query" doc:"Подстрока для поиска по заголовку"`
}

type noteOutput struct {
	Body note.Note
}

type listOutput struct {
	Body []note.Note
}

type deleteOutput struct {
	Body deleteResponse
}

type deleteResponse struct {
	Message string `json:"message"`
}
