package services

import (
	"context"
	"fmt"
	"time"

	"influBack/internal/models"
)

// memStore is an in-memory stand-in for the MySQL repositories. It keeps the
// same error semantics: conditional status transitions and uniqueness checks
// fail the same way the real store does.
type memStore struct {
	nextID int

	brands      map[int]models.Brand      // keyed by user id
	influencers map[int]models.Influencer // keyed by user id

	proposals      map[int]*models.Proposal
	rooms          map[int]*models.ChatRoom
	roomByProp     map[int]int
	contracts      map[int]*models.Contract
	contractByProp map[int]int
	payments       map[int]*models.Payment // keyed by contract id
	campaigns      map[int]*models.Campaign
	campaignByProp map[int]int
	reviews        []models.Review
	messages       []models.ChatMessage

	recalculated []int
}

func newMemStore() *memStore {
	return &memStore{
		brands:         make(map[int]models.Brand),
		influencers:    make(map[int]models.Influencer),
		proposals:      make(map[int]*models.Proposal),
		rooms:          make(map[int]*models.ChatRoom),
		roomByProp:     make(map[int]int),
		contracts:      make(map[int]*models.Contract),
		contractByProp: make(map[int]int),
		payments:       make(map[int]*models.Payment),
		campaigns:      make(map[int]*models.Campaign),
		campaignByProp: make(map[int]int),
	}
}

func (s *memStore) id() int {
	s.nextID++
	return s.nextID
}

func (s *memStore) addBrand(userID int, companyName string) models.Brand {
	b := models.Brand{ID: s.id(), UserID: userID, CompanyName: companyName}
	s.brands[userID] = b
	return b
}

func (s *memStore) addInfluencer(userID int, channelName string) models.Influencer {
	inf := models.Influencer{ID: s.id(), UserID: userID, ChannelName: channelName}
	s.influencers[userID] = inf
	return inf
}

// BrandDirectory / InfluencerDirectory / InfluencerReader

func (s *memStore) GetBrandByUserID(_ context.Context, userID int) (models.Brand, error) {
	b, ok := s.brands[userID]
	if !ok {
		return models.Brand{}, models.ErrBrandNotFound
	}
	return b, nil
}

func (s *memStore) GetInfluencerByUserID(_ context.Context, userID int) (models.Influencer, error) {
	inf, ok := s.influencers[userID]
	if !ok {
		return models.Influencer{}, models.ErrInfluencerNotFound
	}
	return inf, nil
}

func (s *memStore) GetInfluencerByID(_ context.Context, id int) (models.Influencer, error) {
	for _, inf := range s.influencers {
		if inf.ID == id {
			return inf, nil
		}
	}
	return models.Influencer{}, models.ErrInfluencerNotFound
}

// ProposalStore

func (s *memStore) CreateProposal(_ context.Context, p models.Proposal) (models.Proposal, error) {
	p.ID = s.id()
	p.Status = models.ProposalPending
	p.CreatedAt = time.Now()
	for _, b := range s.brands {
		if b.ID == p.BrandID {
			p.CompanyName = b.CompanyName
		}
	}
	for _, inf := range s.influencers {
		if inf.ID == p.InfluencerID {
			p.ChannelName = inf.ChannelName
		}
	}
	cp := p
	s.proposals[p.ID] = &cp
	return p, nil
}

func (s *memStore) GetProposalByID(_ context.Context, id int) (models.Proposal, error) {
	p, ok := s.proposals[id]
	if !ok {
		return models.Proposal{}, models.ErrProposalNotFound
	}
	return *p, nil
}

func (s *memStore) GetProposalsByInfluencerID(_ context.Context, influencerID int) ([]models.Proposal, error) {
	var out []models.Proposal
	for _, p := range s.proposals {
		if p.InfluencerID == influencerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *memStore) GetProposalsByBrandID(_ context.Context, brandID int) ([]models.Proposal, error) {
	var out []models.Proposal
	for _, p := range s.proposals {
		if p.BrandID == brandID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *memStore) PartyUserIDs(_ context.Context, proposalID int) (int, int, error) {
	p, ok := s.proposals[proposalID]
	if !ok {
		return 0, 0, models.ErrProposalNotFound
	}
	var brandUserID, influencerUserID int
	for _, b := range s.brands {
		if b.ID == p.BrandID {
			brandUserID = b.UserID
		}
	}
	for _, inf := range s.influencers {
		if inf.ID == p.InfluencerID {
			influencerUserID = inf.UserID
		}
	}
	return brandUserID, influencerUserID, nil
}

func (s *memStore) RespondToProposal(_ context.Context, proposalID int, status string) (models.ChatRoom, error) {
	p, ok := s.proposals[proposalID]
	if !ok {
		return models.ChatRoom{}, models.ErrProposalNotFound
	}
	if p.Status != models.ProposalPending {
		return models.ChatRoom{}, models.ErrProposalResolved
	}
	p.Status = status
	if status != models.ProposalAccepted {
		return models.ChatRoom{}, nil
	}
	if _, exists := s.roomByProp[proposalID]; exists {
		return models.ChatRoom{}, models.ErrProposalResolved
	}
	room := models.ChatRoom{
		ID:           s.id(),
		BrandID:      p.BrandID,
		InfluencerID: p.InfluencerID,
		ProposalID:   proposalID,
		CreatedAt:    time.Now(),
	}
	s.rooms[room.ID] = &room
	s.roomByProp[proposalID] = room.ID
	return room, nil
}

// RoomStore

func (s *memStore) RoomParticipants(ctx context.Context, roomID int) (int, int, error) {
	room, ok := s.rooms[roomID]
	if !ok {
		return 0, 0, models.ErrChatRoomNotFound
	}
	return s.PartyUserIDs(ctx, room.ProposalID)
}

// MessageStore

func (s *memStore) CreateMessage(_ context.Context, msg models.ChatMessage) (models.ChatMessage, error) {
	msg.ID = s.id()
	msg.CreatedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(len(s.messages)) * time.Second)
	s.messages = append(s.messages, msg)
	return msg, nil
}

func (s *memStore) GetMessagesByRoomID(_ context.Context, roomID int) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, m := range s.messages {
		if m.RoomID == roomID {
			out = append(out, m)
		}
	}
	return out, nil
}

// ContractStore

func (s *memStore) GetContractByID(_ context.Context, id int) (models.Contract, error) {
	c, ok := s.contracts[id]
	if !ok {
		return models.Contract{}, models.ErrContractNotFound
	}
	return *c, nil
}

func (s *memStore) GetContractByProposalID(_ context.Context, proposalID int) (models.Contract, error) {
	id, ok := s.contractByProp[proposalID]
	if !ok {
		return models.Contract{}, models.ErrContractNotFound
	}
	return *s.contracts[id], nil
}

func (s *memStore) CreateContract(_ context.Context, c models.Contract) (models.Contract, error) {
	if id, exists := s.contractByProp[c.ProposalID]; exists {
		return *s.contracts[id], nil
	}
	c.ID = s.id()
	c.Status = models.ContractPending
	c.CreatedAt = time.Now()
	cp := c
	s.contracts[c.ID] = &cp
	s.contractByProp[c.ProposalID] = c.ID
	return c, nil
}

func (s *memStore) Sign(_ context.Context, contractID int, role string) (models.Contract, error) {
	c, ok := s.contracts[contractID]
	if !ok {
		return models.Contract{}, models.ErrContractNotFound
	}
	switch role {
	case models.RoleBrand:
		c.SignedByBrand = true
	case models.RoleInfluencer:
		c.SignedByInfluencer = true
	}
	if c.SignedByBrand && c.SignedByInfluencer {
		c.Status = models.ContractSigned
	}
	return *c, nil
}

// PaymentStore

func (s *memStore) CreatePaymentWithCampaign(_ context.Context, payment models.Payment, campaign models.Campaign) (models.Payment, models.Campaign, error) {
	if _, exists := s.payments[payment.ContractID]; exists {
		return models.Payment{}, models.Campaign{}, models.ErrAlreadyPaid
	}
	payment.ID = s.id()
	payment.Status = models.PaymentPaid
	payment.CreatedAt = time.Now()
	pp := payment
	s.payments[payment.ContractID] = &pp

	campaign.ID = s.id()
	campaign.Status = models.CampaignOngoing
	campaign.CreatedAt = time.Now()
	cp := campaign
	s.campaigns[campaign.ID] = &cp
	s.campaignByProp[campaign.ProposalID] = campaign.ID
	return payment, campaign, nil
}

func (s *memStore) GetPaymentByContractID(_ context.Context, contractID int) (models.Payment, error) {
	p, ok := s.payments[contractID]
	if !ok {
		return models.Payment{}, models.ErrPaymentNotFound
	}
	return *p, nil
}

// CampaignStore

func (s *memStore) GetCampaignByID(_ context.Context, id int) (models.Campaign, error) {
	c, ok := s.campaigns[id]
	if !ok {
		return models.Campaign{}, models.ErrCampaignNotFound
	}
	return *c, nil
}

func (s *memStore) GetCampaignByProposalID(_ context.Context, proposalID int) (models.Campaign, error) {
	id, ok := s.campaignByProp[proposalID]
	if !ok {
		return models.Campaign{}, models.ErrCampaignNotFound
	}
	return *s.campaigns[id], nil
}

func (s *memStore) GetCampaignsForUser(ctx context.Context, userID int) ([]models.Campaign, error) {
	var out []models.Campaign
	for _, c := range s.campaigns {
		brandUserID, influencerUserID, err := s.PartyUserIDs(ctx, c.ProposalID)
		if err != nil {
			continue
		}
		if userID == brandUserID || userID == influencerUserID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (s *memStore) CompleteCampaign(_ context.Context, id int) error {
	c, ok := s.campaigns[id]
	if !ok || c.Status != models.CampaignOngoing {
		return models.ErrCampaignNotFound
	}
	c.Status = models.CampaignCompleted
	return nil
}

func (s *memStore) UpdateMetrics(_ context.Context, id, reach int, engagementRate float64) error {
	c, ok := s.campaigns[id]
	if !ok {
		return models.ErrCampaignNotFound
	}
	c.Reach = reach
	c.EngagementRate = engagementRate
	return nil
}

func (s *memStore) UpdateAIReport(_ context.Context, id int, report string) error {
	c, ok := s.campaigns[id]
	if !ok {
		return models.ErrCampaignNotFound
	}
	c.AIReport = report
	return nil
}

// ReviewStore

func (s *memStore) CreateReview(_ context.Context, rev models.Review) (models.Review, error) {
	for _, existing := range s.reviews {
		if existing.CampaignID == rev.CampaignID && existing.ReviewerID == rev.ReviewerID {
			return models.Review{}, models.ErrAlreadyReviewed
		}
	}
	rev.ID = s.id()
	rev.CreatedAt = time.Now()
	s.reviews = append(s.reviews, rev)
	return rev, nil
}

func (s *memStore) GetReviewsByCampaignID(_ context.Context, campaignID int) ([]models.Review, error) {
	var out []models.Review
	for _, rev := range s.reviews {
		if rev.CampaignID == campaignID {
			out = append(out, rev)
		}
	}
	return out, nil
}

// RatingUpdater

func (s *memStore) RecalculateRating(_ context.Context, influencerID int) error {
	s.recalculated = append(s.recalculated, influencerID)
	return nil
}

type fakeNotifier struct {
	events []string
}

func (n *fakeNotifier) Notify(_ context.Context, userID int, kind, _, _ string) {
	n.events = append(n.events, fmt.Sprintf("%d:%s", userID, kind))
}

type fakeLLM struct {
	reply string
	err   error
	calls []ChatCompletionRequest
}

func (f *fakeLLM) Complete(_ context.Context, req ChatCompletionRequest) (ChatCompletionResponse, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return ChatCompletionResponse{}, f.err
	}
	return ChatCompletionResponse{Content: f.reply}, nil
}

type fakeHub struct {
	online    map[int]bool
	delivered map[int][]models.ChatMessage
}

func newFakeHub(onlineUsers ...int) *fakeHub {
	h := &fakeHub{online: make(map[int]bool), delivered: make(map[int][]models.ChatMessage)}
	for _, id := range onlineUsers {
		h.online[id] = true
	}
	return h
}

func (h *fakeHub) Deliver(userID int, msg models.ChatMessage) {
	h.delivered[userID] = append(h.delivered[userID], msg)
}

func (h *fakeHub) IsOnline(userID int) bool {
	return h.online[userID]
}
