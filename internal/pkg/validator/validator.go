package validator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/s21platform/forum-service/internal/api"
)

const (
	maxTitleLength   = 200
	maxContentLength = 5000
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCreateThread(req *api.CreateThreadRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("title is required")
	}

	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("content is required")
	}

	if len([]rune(req.Title)) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}

	if len([]rune(req.Content)) > maxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	return nil
}

func (v *Validator) ValidateCreateReply(req *api.CreateReplyRequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("content is required")
	}

	if len([]rune(req.Content)) > maxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	if req.ParentReplyId != nil && *req.ParentReplyId != "" {
		if _, err := uuid.Parse(*req.ParentReplyId); err != nil {
			return fmt.Errorf("parent_reply_id is not a valid id")
		}
	}

	return nil
}

func (v *Validator) ValidateBulkDelete(req *api.BulkDeleteRequest) error {
	if len(req.Ids) == 0 {
		return fmt.Errorf("ids are required")
	}

	for _, id := range req.Ids {
		if _, err := uuid.Parse(id); err != nil {
			return fmt.Errorf("id '%s' is not a valid notification id", id)
		}
	}

	return nil
}
