package user

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/courseforum/conversation-service/internal/config"
	"github.com/courseforum/conversation-service/internal/model"
)

// UserHandler keeps the local users projection in sync with profile
// changes arriving over the platform user topic.
type UserHandler struct {
	repository DBRepo
}

func New(repo DBRepo) *UserHandler {
	return &UserHandler{repository: repo}
}

func (h *UserHandler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Handler")

	var event model.UserUpdateEvent
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal user update event: %v", err))
		return
	}

	if event.UserID == "" {
		logger.Error("user update event without user uuid")
		return
	}

	if event.Name != "" {
		if err := h.repository.UpdateUserName(ctx, event.UserID, event.Name); err != nil {
			logger.Error(fmt.Sprintf("failed to update user name: %v", err))
			return
		}
	}

	if event.AvatarURL != "" {
		if err := h.repository.UpdateUserAvatar(ctx, event.UserID, event.AvatarURL); err != nil {
			logger.Error(fmt.Sprintf("failed to update user avatar: %v", err))
			return
		}
	}
}
