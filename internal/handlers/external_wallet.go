package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/custodia-tech/wallet-service/internal/logger"
	"github.com/custodia-tech/wallet-service/internal/models"
)

// ExternalWalletManager defines the interface that the service must implement.
type ExternalWalletManager interface {
	LinkExternalWallet(ctx context.Context, userID uuid.UUID, network, publicKey, signature, message, label string) (*models.WalletResponse, error)
	GetExternalWallets(ctx context.Context, userID uuid.UUID) ([]models.ExternalWalletResponse, error)
	SetPrimaryExternalWallet(ctx context.Context, userID, externalWalletID uuid.UUID) (*models.ExternalWalletResponse, error)
}

// NewLinkExternalWalletHandler handles linking an external wallet by
// signature proof.
// @Summary Link external wallet
// @Description Verifies an ownership signature and links the external address. Re-linking the same address refreshes its verification timestamp
// @Tags external-wallets
// @Accept json
// @Produce json
// @Param request body models.LinkExternalWalletRequest true "Link Request"
// @Success 200 {object} models.LinkExternalWalletResponse
// @Failure 400 {object} models.ExternalWalletErrorResponse "Invalid signature or body"
// @Failure 401 {object} models.ExternalWalletErrorResponse "Unauthorized"
// @Router /wallet/external/link [post]
// @Security BearerAuth
func NewLinkExternalWalletHandler(
	manager ExternalWalletManager,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(w, r, tokenGetter)
		if !ok {
			return
		}

		var req models.LinkExternalWalletRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Network == "" || req.PublicKey == "" || req.Signature == "" || req.Message == "" {
			writeError(w, http.StatusBadRequest, "Network, public key, signature and message are required")
			return
		}

		wallet, err := manager.LinkExternalWallet(ctx, claims.UserID, req.Network, req.PublicKey, req.Signature, req.Message, req.Label)
		if err != nil {
			logger.Log.Errorw("failed to link external wallet",
				"userID", claims.UserID, "network", req.Network, "error", err)
			status, message := serviceErrorStatus(err)
			writeError(w, status, message)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.LinkExternalWalletResponse{
			Message: "External wallet linked",
			Wallet:  wallet,
		})
	}
}

// NewGetExternalWalletsHandler lists the user's linked external wallets.
// @Summary List external wallets
// @Tags external-wallets
// @Produce json
// @Success 200 {object} models.ExternalWalletsResponse
// @Failure 401 {object} models.ExternalWalletErrorResponse "Unauthorized"
// @Failure 500 {object} models.ExternalWalletErrorResponse "Internal server error"
// @Router /wallet/external [get]
// @Security BearerAuth
func NewGetExternalWalletsHandler(
	manager ExternalWalletManager,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(w, r, tokenGetter)
		if !ok {
			return
		}

		externals, err := manager.GetExternalWallets(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list external wallets", "userID", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if externals == nil {
			externals = []models.ExternalWalletResponse{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.ExternalWalletsResponse{ExternalWallets: externals})
	}
}

// NewSetPrimaryExternalWalletHandler marks one linked wallet as the
// withdrawal destination for its network.
// @Summary Set primary external wallet
// @Tags external-wallets
// @Produce json
// @Param externalWalletID path string true "External wallet id"
// @Success 200 {object} models.ExternalWalletResponse
// @Failure 400 {object} models.ExternalWalletErrorResponse "Invalid id"
// @Failure 401 {object} models.ExternalWalletErrorResponse "Unauthorized"
// @Failure 403 {object} models.ExternalWalletErrorResponse "No access"
// @Failure 404 {object} models.ExternalWalletErrorResponse "Not found"
// @Router /wallet/external/{externalWalletID}/primary [post]
// @Security BearerAuth
func NewSetPrimaryExternalWalletHandler(
	manager ExternalWalletManager,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(w, r, tokenGetter)
		if !ok {
			return
		}

		externalWalletID, err := uuid.Parse(chi.URLParam(r, "externalWalletID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid external wallet id")
			return
		}

		external, err := manager.SetPrimaryExternalWallet(ctx, claims.UserID, externalWalletID)
		if err != nil {
			logger.Log.Errorw("failed to set primary external wallet",
				"userID", claims.UserID, "externalWalletID", externalWalletID, "error", err)
			status, message := serviceErrorStatus(err)
			writeError(w, status, message)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(external)
	}
}

// RegisterExternalWalletHandlers registers the external wallet routes
func RegisterExternalWalletHandlers(r chi.Router, link, list, setPrimary http.HandlerFunc) {
	r.Post("/wallet/external/link", link)
	r.Get("/wallet/external", list)
	r.Post("/wallet/external/{externalWalletID}/primary", setPrimary)
}
