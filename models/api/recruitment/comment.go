package recruitmentapimodels

import (
	"time"

	"github.com/pkg/errors"
	dbmodels "hr-office-backend/models/db"
)

type CommentData struct {
	Text string `json:"text"`
}

func (c CommentData) Validate() error {
	if c.Text == "" {
		return errors.New("пустой текст комментария")
	}
	return nil
}

type CommentView struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	Date       time.Time `json:"date"`
}

func CommentConvert(rec dbmodels.Comment) CommentView {
	result := CommentView{
		ID:       rec.ID,
		AuthorID: rec.AuthorID,
		Text:     rec.Text,
		Date:     rec.CreatedAt,
	}
	if rec.Author != nil {
		result.AuthorName = rec.Author.GetFullName()
	}
	return result
}
