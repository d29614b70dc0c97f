package services

import (
	"errors"

	"github.com/weijinqqq/smart-fitness-backend/models"

	"gorm.io/gorm"
)

type ForumService struct {
	db *gorm.DB
}

func NewForumService(db *gorm.DB) *ForumService {
	return &ForumService{db: db}
}

func (s *ForumService) CreatePost(userID uint, title, content string) (*models.Post, error) {
	post := models.Post{UserID: userID, Title: title, Content: content}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&post).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *ForumService) ListPosts() ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost returns a post together with its comments, oldest first.
func (s *ForumService) GetPost(postID uint) (*models.Post, []models.Comment, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	var comments []models.Comment
	if err := s.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, nil, err
	}
	return &post, comments, nil
}

// UpdatePost lets only the author change title or content.
func (s *ForumService) UpdatePost(userID, postID uint, title, content string) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if post.UserID != userID {
		return nil, ErrForbidden
	}

	if title != "" {
		post.Title = title
	}
	if content != "" {
		post.Content = content
	}
	if err := s.db.Save(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes the post and all its comments in one transaction.
// Only the author may delete.
func (s *ForumService) DeletePost(userID, postID uint) error {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if post.UserID != userID {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
}

func (s *ForumService) CreateComment(userID, postID uint, content string) (*models.Comment, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comment := models.Comment{PostID: postID, UserID: userID, Content: content}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&comment).Error
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a single comment; the parent post is untouched.
// Only the comment's author may delete.
func (s *ForumService) DeleteComment(userID, commentID uint) error {
	var comment models.Comment
	if err := s.db.First(&comment, commentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if comment.UserID != userID {
		return ErrForbidden
	}
	return s.db.Delete(&comment).Error
}
