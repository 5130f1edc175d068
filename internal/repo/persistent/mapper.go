package persistent

import (
	"reviewdb/internal/entity"
	"reviewdb/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:               m.ID,
		Username:         m.Username,
		Email:            m.Email,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		Bio:              m.Bio,
		Role:             entity.UserRole(m.Role),
		IsStaff:          m.IsStaff,
		IsSuperuser:      m.IsSuperuser,
		ConfirmationCode: m.ConfirmationCode,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:               e.ID,
		Username:         e.Username,
		Email:            e.Email,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		Bio:              e.Bio,
		Role:             string(e.Role),
		IsStaff:          e.IsStaff,
		IsSuperuser:      e.IsSuperuser,
		ConfirmationCode: e.ConfirmationCode,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ToCategoryEntity(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}
	return &entity.Category{ID: m.ID, Name: m.Name, Slug: m.Slug}
}

func ToCategoryModel(e *entity.Category) *model.CategoryModel {
	if e == nil {
		return nil
	}
	return &model.CategoryModel{ID: e.ID, Name: e.Name, Slug: e.Slug}
}

func ToGenreEntity(m *model.GenreModel) *entity.Genre {
	if m == nil {
		return nil
	}
	return &entity.Genre{ID: m.ID, Name: m.Name, Slug: m.Slug}
}

func ToGenreModel(e *entity.Genre) *model.GenreModel {
	if e == nil {
		return nil
	}
	return &model.GenreModel{ID: e.ID, Name: e.Name, Slug: e.Slug}
}

func ToTitleEntity(m *model.TitleModel) *entity.Title {
	if m == nil {
		return nil
	}

	genres := make([]entity.Genre, len(m.Genres))
	for i := range m.Genres {
		genres[i] = *ToGenreEntity(&m.Genres[i])
	}

	return &entity.Title{
		ID:          m.ID,
		Name:        m.Name,
		Year:        m.Year,
		Description: m.Description,
		Genres:      genres,
		Category:    ToCategoryEntity(m.Category),
	}
}

func ToReviewEntity(m *model.ReviewModel) *entity.Review {
	if m == nil {
		return nil
	}

	author := ""
	if m.Author != nil {
		author = m.Author.Username
	}

	return &entity.Review{
		ID:       m.ID,
		TitleID:  m.TitleID,
		AuthorID: m.AuthorID,
		Author:   author,
		Text:     m.Text,
		Score:    m.Score,
		PubDate:  m.PubDate,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	author := ""
	if m.Author != nil {
		author = m.Author.Username
	}

	return &entity.Comment{
		ID:       m.ID,
		ReviewID: m.ReviewID,
		AuthorID: m.AuthorID,
		Author:   author,
		Text:     m.Text,
		PubDate:  m.PubDate,
	}
}
