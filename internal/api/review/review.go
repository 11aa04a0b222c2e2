package review

import (
	"log"
	"net/http"
	"strconv"

	"reviewmap_backend/internal/api/apierr"
	dto "reviewmap_backend/internal/api/dto/review"
	"reviewmap_backend/internal/converter"
	"reviewmap_backend/internal/middleware"
	"reviewmap_backend/internal/model"
	"reviewmap_backend/internal/service"
	"reviewmap_backend/pkg/req"
	"reviewmap_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.ReviewService
}

type Handler struct {
	serv service.ReviewService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Create создает отзыв от имени залогиненного пользователя.
// Адрес находится или создается автоматически
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	requestBody, err := req.Decode[dto.CreateReviewRequest](r.Body)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid request")
		return
	}

	if requestBody.Title == "" || requestBody.Content == "" || requestBody.Address == "" {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "missing required fields: title, content, or address")
		return
	}

	result, err := h.serv.Create(r.Context(), userID, converter.ToReviewModel(requestBody), requestBody.Address)
	if err != nil {
		log.Println("Create review error:", err)
		resp.WriteErrorResponse(w, apierr.Status(err), "failed to create review: "+err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToReviewWithAddressResponse(result))
}

// GroupedByAddress возвращает все адреса с отзывами и их авторами
func (h *Handler) GroupedByAddress(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.serv.GroupedByAddress(r.Context())
	if err != nil {
		log.Println("GroupedByAddress error:", err)
		resp.WriteErrorResponse(w, apierr.Status(err), "failed to fetch reviews")
		return
	}

	if len(grouped) == 0 {
		resp.WriteErrorResponse(w, http.StatusNotFound, "no addresses or reviews found")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAddressWithReviewsResponses(grouped))
}

// ByAddress возвращает отзывы на конкретный адрес
func (h *Handler) ByAddress(w http.ResponseWriter, r *http.Request) {
	addressID, err := strconv.Atoi(chi.URLParam(r, "addressId"))
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid address ID")
		return
	}

	reviews, err := h.serv.ByAddress(r.Context(), addressID)
	if err != nil {
		log.Println("ByAddress error:", err)
		resp.WriteErrorResponse(w, apierr.Status(err), "failed to retrieve reviews")
		return
	}

	if len(reviews) == 0 {
		resp.WriteErrorResponse(w, http.StatusNotFound, "no reviews found for this address")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToReviewsWithAuthor(reviews))
}

// Update обновляет отзыв, доступно только его автору
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid review ID")
		return
	}

	requestBody, err := req.Decode[dto.UpdateReviewRequest](r.Body)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid request")
		return
	}

	review := &model.Review{
		ID:      id,
		Title:   requestBody.Title,
		Content: requestBody.Content,
		Rating:  requestBody.Rating,
	}

	updated, err := h.serv.Update(r.Context(), userID, review)
	if err != nil {
		log.Println("Update review error:", err)
		resp.WriteErrorResponse(w, apierr.Status(err), "failed to update review")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToReviewResponse(updated))
}

// Delete удаляет отзыв, доступно только его автору
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid review ID")
		return
	}

	deleted, err := h.serv.Delete(r.Context(), userID, id)
	if err != nil {
		log.Println("Delete review error:", err)
		resp.WriteErrorResponse(w, apierr.Status(err), "failed to delete review")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToReviewResponse(deleted))
}
