package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"

	"roomNest/internal/models"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON, app.withSession)
	authMiddleware := standardMiddleware.Append(app.requireSession)
	adminMiddleware := standardMiddleware.Append(app.requireRole(models.RoleAdmin))

	mux := pat.New()

	// Rooms: literal paths before the slug catch-all.
	mux.Get("/rooms/amenities", standardMiddleware.ThenFunc(app.roomHandler.GetAmenities))
	mux.Get("/rooms/:slug", standardMiddleware.ThenFunc(app.roomHandler.GetRoomBySlug))
	mux.Get("/rooms", standardMiddleware.ThenFunc(app.roomHandler.GetRooms))

	// Roommate finder
	mux.Get("/roomies/:id", standardMiddleware.ThenFunc(app.roomieHandler.GetRoomieByID))
	mux.Get("/roomies", standardMiddleware.ThenFunc(app.roomieHandler.GetRoomies))

	// Auth
	mux.Post("/auth/login", standardMiddleware.ThenFunc(app.authHandler.Login))
	mux.Post("/auth/logout", standardMiddleware.ThenFunc(app.authHandler.Logout))
	mux.Get("/auth/me", authMiddleware.ThenFunc(app.authHandler.Me))

	// Moderation
	mux.Get("/moderation/rooms", adminMiddleware.ThenFunc(app.moderationHandler.GetPendingRooms))
	mux.Post("/moderation/rooms/:id/approve", adminMiddleware.ThenFunc(app.moderationHandler.ApproveRoom))
	mux.Post("/moderation/rooms/:id/reject", adminMiddleware.ThenFunc(app.moderationHandler.RejectRoom))
	mux.Post("/moderation/rooms/:id/images", adminMiddleware.ThenFunc(app.moderationHandler.UploadRoomImage))
	mux.Del("/moderation/rooms/:id/images/:image_id", adminMiddleware.ThenFunc(app.moderationHandler.DeleteRoomImage))

	// Map support
	mux.Get("/geo/reverse", standardMiddleware.ThenFunc(app.geoHandler.ReverseGeocode))

	// Asset discovery
	mux.Get("/assets/:category/images", standardMiddleware.ThenFunc(app.assetsHandler.DiscoverImages))

	// Assistant chat socket; websocket upgrades do not go through alice.
	mux.Get("/assistant/ws", http.HandlerFunc(app.handleAssistantWS))

	return mux
}
