package services

import (
	"context"
	"errors"
	"testing"

	"influBack/internal/models"
)

func roomWithParties(t *testing.T, store *memStore) models.ChatRoom {
	t.Helper()
	store.addBrand(1, "CosmoBrand")
	inf := store.addInfluencer(2, "BeautyChannel")
	psvc := newProposalService(store, &fakeNotifier{})
	proposal, err := psvc.SubmitProposal(context.Background(), 1, SubmitProposalInput{
		InfluencerID: inf.ID, CampaignName: "Spring Launch", Budget: 500, Schedule: "2024-03",
	})
	if err != nil {
		t.Fatalf("SubmitProposal: %v", err)
	}
	room, err := psvc.RespondToProposal(context.Background(), 2, proposal.ID, "accept")
	if err != nil {
		t.Fatalf("RespondToProposal: %v", err)
	}
	return room
}

func TestSendMessageDeliversToBothWhenOnline(t *testing.T) {
	store := newMemStore()
	hub := newFakeHub(1, 2)
	notifier := &fakeNotifier{}
	svc := &MessageService{MessageRepo: store, Rooms: store, Notifier: notifier, Hub: hub}
	room := roomWithParties(t, store)

	msg, err := svc.SendMessage(context.Background(), 1, room.ID, "Hello")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if msg.ID == 0 || msg.SenderID != 1 {
		t.Fatalf("unexpected stored message: %+v", msg)
	}
	if len(hub.delivered[1]) != 1 || len(hub.delivered[2]) != 1 {
		t.Fatalf("expected delivery to both participants, got %v", hub.delivered)
	}
	if len(notifier.events) != 0 {
		t.Fatalf("online recipient must not get a stored notification, got %v", notifier.events)
	}
}

func TestSendMessageNotifiesOfflineRecipient(t *testing.T) {
	store := newMemStore()
	hub := newFakeHub(1) // influencer offline
	notifier := &fakeNotifier{}
	svc := &MessageService{MessageRepo: store, Rooms: store, Notifier: notifier, Hub: hub}
	room := roomWithParties(t, store)

	if _, err := svc.SendMessage(context.Background(), 1, room.ID, "Hello"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if len(notifier.events) != 1 || notifier.events[0] != "2:message" {
		t.Fatalf("expected message notification for offline user 2, got %v", notifier.events)
	}
}

func TestSendMessageRejectsEmptyText(t *testing.T) {
	store := newMemStore()
	svc := &MessageService{MessageRepo: store, Rooms: store, Notifier: &fakeNotifier{}, Hub: newFakeHub()}
	room := roomWithParties(t, store)

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := svc.SendMessage(context.Background(), 1, room.ID, text); !errors.Is(err, models.ErrEmptyMessage) {
			t.Fatalf("expected ErrEmptyMessage for %q, got %v", text, err)
		}
	}
	if len(store.messages) != 0 {
		t.Fatalf("empty messages must not be stored, got %d", len(store.messages))
	}
}

func TestSendMessageRejectsNonParticipants(t *testing.T) {
	store := newMemStore()
	svc := &MessageService{MessageRepo: store, Rooms: store, Notifier: &fakeNotifier{}, Hub: newFakeHub()}
	room := roomWithParties(t, store)

	if _, err := svc.SendMessage(context.Background(), 99, room.ID, "hi"); !errors.Is(err, models.ErrNotRoomParticipant) {
		t.Fatalf("expected ErrNotRoomParticipant, got %v", err)
	}
}

func TestGetMessagesForRoomPreservesOrder(t *testing.T) {
	store := newMemStore()
	svc := &MessageService{MessageRepo: store, Rooms: store, Notifier: &fakeNotifier{}, Hub: newFakeHub(1, 2)}
	room := roomWithParties(t, store)

	texts := []string{"Hello", "Let's discuss budget", "Sounds good"}
	senders := []int{1, 2, 1}
	for i, text := range texts {
		if _, err := svc.SendMessage(context.Background(), senders[i], room.ID, text); err != nil {
			t.Fatalf("SendMessage %q: %v", text, err)
		}
	}

	history, err := svc.GetMessagesForRoom(context.Background(), 2, room.ID)
	if err != nil {
		t.Fatalf("GetMessagesForRoom: %v", err)
	}
	if len(history) != len(texts) {
		t.Fatalf("expected %d messages, got %d", len(texts), len(history))
	}
	for i, m := range history {
		if m.Text != texts[i] {
			t.Fatalf("position %d: expected %q, got %q", i, texts[i], m.Text)
		}
	}

	if _, err := svc.GetMessagesForRoom(context.Background(), 99, room.ID); !errors.Is(err, models.ErrNotRoomParticipant) {
		t.Fatalf("expected ErrNotRoomParticipant for outsider read, got %v", err)
	}
}
