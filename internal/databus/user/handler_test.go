package user

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/courseforum/conversation-service/internal/config"
)

func loggerContext(mockLogger *logger_lib.MockLoggerInterface) context.Context {
	return context.WithValue(context.Background(), config.KeyLogger, mockLogger)
}

func TestUserHandler_Handler(t *testing.T) {
	t.Parallel()

	t.Run("updates_name_and_avatar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := NewMockDBRepo(ctrl)
		mockLogger := logger_lib.NewMockLoggerInterface(ctrl)

		mockLogger.EXPECT().AddFuncName("Handler")
		mockRepo.EXPECT().UpdateUserName(gomock.Any(), "b2cda7a2-8f40-4a0b-b0ff-fcf2d2b4e2c1", "Renamed").Return(nil)
		mockRepo.EXPECT().UpdateUserAvatar(gomock.Any(), "b2cda7a2-8f40-4a0b-b0ff-fcf2d2b4e2c1", "https://cdn.example.com/a.png").Return(nil)

		handler := New(mockRepo)
		handler.Handler(loggerContext(mockLogger), []byte(`{"user_uuid":"b2cda7a2-8f40-4a0b-b0ff-fcf2d2b4e2c1","name":"Renamed","avatar_link":"https://cdn.example.com/a.png"}`))
	})

	t.Run("name_only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := NewMockDBRepo(ctrl)
		mockLogger := logger_lib.NewMockLoggerInterface(ctrl)

		mockLogger.EXPECT().AddFuncName("Handler")
		mockRepo.EXPECT().UpdateUserName(gomock.Any(), "b2cda7a2-8f40-4a0b-b0ff-fcf2d2b4e2c1", "Renamed").Return(nil)

		handler := New(mockRepo)
		handler.Handler(loggerContext(mockLogger), []byte(`{"user_uuid":"b2cda7a2-8f40-4a0b-b0ff-fcf2d2b4e2c1","name":"Renamed"}`))
	})

	t.Run("invalid_payload_is_logged_and_skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := NewMockDBRepo(ctrl)
		mockLogger := logger_lib.NewMockLoggerInterface(ctrl)

		mockLogger.EXPECT().AddFuncName("Handler")
		mockLogger.EXPECT().Error(gomock.Any())

		handler := New(mockRepo)
		handler.Handler(loggerContext(mockLogger), []byte("not json"))
	})

	t.Run("missing_user_uuid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := NewMockDBRepo(ctrl)
		mockLogger := logger_lib.NewMockLoggerInterface(ctrl)

		mockLogger.EXPECT().AddFuncName("Handler")
		mockLogger.EXPECT().Error(gomock.Any())

		handler := New(mockRepo)
		handler.Handler(loggerContext(mockLogger), []byte(`{"name":"Renamed"}`))
	})
}
