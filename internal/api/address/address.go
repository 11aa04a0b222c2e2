package address

import (
	"log"
	"net/http"
	"strconv"

	"reviewmap_backend/internal/api/apierr"
	dto "reviewmap_backend/internal/api/dto/address"
	"reviewmap_backend/internal/converter"
	"reviewmap_backend/internal/service"
	"reviewmap_backend/pkg/req"
	"reviewmap_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.AddressService
}

type Handler struct {
	serv service.AddressService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// FindOrCreate возвращает существующий адрес или геокодирует
// и создает новый
func (h *Handler) FindOrCreate(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.CreateAddressRequest](r.Body)
	if err != nil || requestBody.Address == "" {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "address is required")
		return
	}

	address, err := h.serv.FindOrCreate(r.Context(), requestBody.Address)
	if err != nil {
		log.Println("FindOrCreate address error:", err)
		resp.WriteErrorResponse(w, apierr.Status(err), "failed to process the address")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAddressResponse(address))
}

// GetAll возвращает все адреса
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.serv.ListAddresses(r.Context())
	if err != nil {
		log.Println("GetAll addresses error:", err)
		resp.WriteErrorResponse(w, apierr.Status(err), "failed to fetch addresses")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAddressResponses(addresses))
}

// GetByID возвращает адрес по ID
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid address ID provided")
		return
	}

	address, err := h.serv.AddressByID(r.Context(), id)
	if err != nil {
		log.Println("GetByID address error:", err)
		resp.WriteErrorResponse(w, apierr.Status(err), "address not found")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAddressResponse(address))
}

// Delete удаляет адрес вместе с отзывами на него
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid address ID provided")
		return
	}

	address, err := h.serv.DeleteAddress(r.Context(), id)
	if err != nil {
		log.Println("Delete address error:", err)
		resp.WriteErrorResponse(w, apierr.Status(err), "failed to delete address")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAddressResponse(address))
}

// Search ищет адреса по подстроке, пустой запрос возвращает все.
// Каждый адрес отдается вместе с отзывами
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	results, err := h.serv.Search(r.Context(), query)
	if err != nil {
		log.Println("Search addresses error:", err)
		resp.WriteErrorResponse(w, apierr.Status(err), "failed to search addresses")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAddressWithReviewsResponses(results))
}
