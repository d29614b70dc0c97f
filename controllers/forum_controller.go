package controllers

import (
	"net/http"

	"github.com/weijinqqq/smart-fitness-backend/middlewares"
	"github.com/weijinqqq/smart-fitness-backend/services"

	"github.com/gin-gonic/gin"
)

type ForumController struct {
	forum *services.ForumService
}

func NewForumController(forum *services.ForumService) *ForumController {
	return &ForumController{forum: forum}
}

type PostInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (ctl *ForumController) CreatePost(c *gin.Context) {
	var input PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := ctl.forum.CreatePost(middlewares.CurrentUserID(c), input.Title, input.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "post created successfully",
		"post_id": post.ID,
		"title":   post.Title,
	})
}

func (ctl *ForumController) ListPosts(c *gin.Context) {
	posts, err := ctl.forum.ListPosts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(posts),
		"posts": posts,
	})
}

func (ctl *ForumController) GetPost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, comments, err := ctl.forum.GetPost(id)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":     post,
		"comments": comments,
	})
}

// PostUpdateInput allows partial updates; empty fields are left alone.
type PostUpdateInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (ctl *ForumController) UpdatePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input PostUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := ctl.forum.UpdatePost(middlewares.CurrentUserID(c), id, input.Title, input.Content)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "post updated successfully",
		"post":    post,
	})
}

func (ctl *ForumController) DeletePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.forum.DeletePost(middlewares.CurrentUserID(c), id); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted successfully"})
}

type CommentInput struct {
	Content string `json:"content" binding:"required"`
}

func (ctl *ForumController) CreateComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := ctl.forum.CreateComment(middlewares.CurrentUserID(c), id, input.Content)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "comment created successfully",
		"comment_id": comment.ID,
		"content":    comment.Content,
	})
}

func (ctl *ForumController) DeleteComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctl.forum.DeleteComment(middlewares.CurrentUserID(c), id); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted successfully"})
}
