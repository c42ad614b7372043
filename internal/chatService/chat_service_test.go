package chat

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"fishmarket/internal/marketerrors"
	model "fishmarket/internal/models"
	"fishmarket/internal/repository"
)

func newService(t *testing.T) (*ChatService, *repository.MockMarketDB) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockRepo := repository.NewMockMarketDB(ctrl)
	return NewChatService(mockRepo), mockRepo
}

// Tests Send
func TestChatService_Send(t *testing.T) {
	t.Run("valid_message", func(t *testing.T) {
		service, mockRepo := newService(t)
		mockRepo.EXPECT().GetProfile("fisher1").Return(model.Profile{ID: "fisher1"}, nil)
		mockRepo.EXPECT().GetListing("l1").Return(model.Listing{ID: "l1"}, nil)
		mockRepo.EXPECT().CreateMessage(gomock.Any()).Return(nil)

		m, err := service.Send("buyer1", "fisher1", "l1", "  Is the catch still fresh?  ")
		require.NoError(t, err)
		require.Equal(t, "Is the catch still fresh?", m.Message)
		require.Equal(t, "l1", m.ListingID)
	})

	t.Run("empty_message", func(t *testing.T) {
		service, _ := newService(t)
		_, err := service.Send("buyer1", "fisher1", "l1", "   ")
		require.Error(t, err)
	})

	t.Run("self_message", func(t *testing.T) {
		service, _ := newService(t)
		_, err := service.Send("buyer1", "buyer1", "l1", "hello")
		require.ErrorIs(t, err, marketerrors.ErrForbidden)
	})
}

// Tests Conversation visibility
func TestChatService_Conversation(t *testing.T) {
	l := model.Listing{ID: "l1", FishermanID: "fisher1"}
	msgs := []model.Message{
		{ID: "m1", SenderID: "buyer1", ReceiverID: "fisher1", Message: "price?"},
		{ID: "m2", SenderID: "fisher1", ReceiverID: "buyer1", Message: "650/kg"},
		{ID: "m3", SenderID: "buyer2", ReceiverID: "fisher1", Message: "still available?"},
	}

	t.Run("seller_sees_all_threads", func(t *testing.T) {
		service, mockRepo := newService(t)
		mockRepo.EXPECT().GetListing("l1").Return(l, nil)
		mockRepo.EXPECT().MessagesByListing("l1").Return(msgs, nil)

		got, err := service.Conversation("fisher1", "l1")
		require.NoError(t, err)
		require.Len(t, got, 3)
	})

	t.Run("buyer_sees_only_own_thread", func(t *testing.T) {
		service, mockRepo := newService(t)
		mockRepo.EXPECT().GetListing("l1").Return(l, nil)
		mockRepo.EXPECT().MessagesByListing("l1").Return(msgs, nil)

		got, err := service.Conversation("buyer1", "l1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, m := range got {
			require.True(t, m.SenderID == "buyer1" || m.ReceiverID == "buyer1")
		}
	})
}
