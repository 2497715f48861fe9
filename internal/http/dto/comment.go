package dto

type CreateCommentRequest struct {
	UserID  int64  `json:"user_id" binding:"required"`
	Content string `json:"content" binding:"required,min=1,max=10000"`
}
