package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"influBack/internal/models"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(""))
	brandMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleBrand))
	influencerMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleInfluencer))
	adminMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole(models.RoleAdmin))

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/user/logout", authMiddleware.ThenFunc(app.userHandler.LogOut))
	mux.Get("/user/me", authMiddleware.ThenFunc(app.userHandler.GetMe))

	// Influencers
	mux.Get("/influencers/me", influencerMiddleware.ThenFunc(app.influencerHandler.GetMyProfile))
	mux.Put("/influencers/me", influencerMiddleware.ThenFunc(app.influencerHandler.UpdateProfile))
	mux.Get("/influencers/:id", authMiddleware.ThenFunc(app.influencerHandler.GetInfluencerByID))
	mux.Get("/influencers", authMiddleware.ThenFunc(app.influencerHandler.GetInfluencers))

	// Brands
	mux.Get("/brands/me", brandMiddleware.ThenFunc(app.brandHandler.GetMyProfile))
	mux.Put("/brands/me", brandMiddleware.ThenFunc(app.brandHandler.UpdateProfile))
	mux.Get("/brands/:id", authMiddleware.ThenFunc(app.brandHandler.GetBrandByID))

	// Proposals
	mux.Post("/proposals", brandMiddleware.ThenFunc(app.proposalHandler.CreateProposal))
	mux.Post("/proposals/:id/respond", influencerMiddleware.ThenFunc(app.proposalHandler.RespondToProposal))
	mux.Get("/proposals/:id", authMiddleware.ThenFunc(app.proposalHandler.GetProposalByID))
	mux.Get("/proposals", authMiddleware.ThenFunc(app.proposalHandler.GetMyProposals))

	// Chat
	mux.Get("/ws", authMiddleware.ThenFunc(app.WebSocketHandler))
	mux.Get("/rooms/proposal/:proposal_id", authMiddleware.ThenFunc(app.chatHandler.GetRoomByProposalID))
	mux.Get("/rooms/:id", authMiddleware.ThenFunc(app.chatHandler.GetRoomByID))
	mux.Get("/rooms", authMiddleware.ThenFunc(app.chatHandler.GetMyRooms))
	mux.Post("/messages", authMiddleware.ThenFunc(app.messageHandler.CreateMessage))
	mux.Get("/messages/:room_id", authMiddleware.ThenFunc(app.messageHandler.GetMessagesForRoom))

	// Contracts
	mux.Get("/contracts/proposal/:proposal_id", authMiddleware.ThenFunc(app.contractHandler.GetContractForProposal))
	mux.Post("/contracts/:id/sign", authMiddleware.ThenFunc(app.contractHandler.Sign))
	mux.Get("/contracts/:id", authMiddleware.ThenFunc(app.contractHandler.GetContractByID))

	// Payments
	mux.Post("/payments/contract/:contract_id", brandMiddleware.ThenFunc(app.paymentHandler.Pay))
	mux.Get("/payments/contract/:contract_id", authMiddleware.ThenFunc(app.paymentHandler.GetPaymentByContractID))

	// Campaigns
	mux.Get("/campaigns/proposal/:proposal_id", authMiddleware.ThenFunc(app.campaignHandler.GetCampaignByProposalID))
	mux.Post("/campaigns/:id/complete", brandMiddleware.ThenFunc(app.campaignHandler.CompleteCampaign))
	mux.Put("/campaigns/:id/metrics", influencerMiddleware.ThenFunc(app.campaignHandler.UpdateMetrics))
	mux.Post("/campaigns/:id/report", authMiddleware.ThenFunc(app.campaignHandler.GenerateReport))
	mux.Get("/campaigns/:id", authMiddleware.ThenFunc(app.campaignHandler.GetCampaignByID))
	mux.Get("/campaigns", authMiddleware.ThenFunc(app.campaignHandler.GetMyCampaigns))

	// Reviews
	mux.Post("/reviews", brandMiddleware.ThenFunc(app.reviewHandler.CreateReview))
	mux.Get("/reviews/campaign/:campaign_id", authMiddleware.ThenFunc(app.reviewHandler.GetReviewsByCampaignID))

	// AI
	mux.Post("/ai/recommend", brandMiddleware.ThenFunc(app.insightHandler.RecommendInfluencers))
	mux.Get("/ai/influencers/:influencer_id/insight", authMiddleware.ThenFunc(app.insightHandler.InfluencerInsight))

	// Notifications
	mux.Get("/notifications/unread_count", authMiddleware.ThenFunc(app.notificationHandler.UnreadCount))
	mux.Put("/notifications/:id/read", authMiddleware.ThenFunc(app.notificationHandler.MarkRead))
	mux.Get("/notifications", authMiddleware.ThenFunc(app.notificationHandler.GetNotifications))
	mux.Post("/notifications/fcm_token", authMiddleware.ThenFunc(app.notificationHandler.RegisterFCMToken))

	// Blog
	mux.Post("/blogs", adminMiddleware.ThenFunc(app.blogHandler.CreateBlog))
	mux.Get("/blogs/:id", standardMiddleware.ThenFunc(app.blogHandler.GetBlogByID))
	mux.Get("/blogs", standardMiddleware.ThenFunc(app.blogHandler.GetBlogs))
	mux.Put("/blogs/:id", adminMiddleware.ThenFunc(app.blogHandler.UpdateBlog))
	mux.Del("/blogs/:id", adminMiddleware.ThenFunc(app.blogHandler.DeleteBlog))

	// Contact
	mux.Post("/contact", standardMiddleware.ThenFunc(app.contactHandler.CreateContactRequest))
	mux.Get("/contact", adminMiddleware.ThenFunc(app.contactHandler.GetContactRequests))

	return standardMiddleware.Then(mux)
}
