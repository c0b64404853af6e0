package services

import (
	"fmt"

	"blogsite/app/models"
	"blogsite/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

// CreatePost publishes a post on behalf of its author, stamping the author
// display name and today's date.
func (s *PostService) CreatePost(post *models.Post, author *models.User) error {
	post.UserID = author.ID
	post.Author = author.Name
	post.BeforeCreate()

	if err := post.Validate(); err != nil {
		return fmt.Errorf("invalid post: %w", err)
	}

	return s.postRepo.Create(post)
}

// GetPost retrieves a post by ID with its comments
func (s *PostService) GetPost(id int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	post.Comments = comments

	return post, nil
}

// ListPosts retrieves a paginated list of posts with their comments
func (s *PostService) ListPosts(page, perPage int) ([]*models.Post, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	offset := (page - 1) * perPage
	posts, err := s.postRepo.List(perPage, offset)
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		comments, err := s.commentRepo.ListByPost(post.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get comments for post %d: %w", post.ID, err)
		}
		post.Comments = comments
	}

	return posts, nil
}

// UpdatePost mutates the editable fields of an existing post. The id,
// owner, creation time and publication date stay untouched.
func (s *PostService) UpdatePost(id int, form *models.Post, editor *models.User) (*models.Post, error) {
	existing, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.Title = form.Title
	existing.Subtitle = form.Subtitle
	existing.ImageURL = form.ImageURL
	existing.Body = form.Body
	existing.Author = editor.Name
	existing.Comments = nil

	if err := existing.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post: %w", err)
	}

	if err := s.postRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeletePost deletes a post and all its comments. The source this design
// came from orphaned the comments; cascading here is deliberate.
func (s *PostService) DeletePost(id int) error {
	if _, err := s.postRepo.GetByID(id); err != nil {
		return err
	}

	if err := s.commentRepo.DeleteByPost(id); err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}

	return s.postRepo.Delete(id)
}
