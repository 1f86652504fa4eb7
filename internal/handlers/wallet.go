package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/custodia-tech/wallet-service/internal/jwt"
	"github.com/custodia-tech/wallet-service/internal/logger"
	"github.com/custodia-tech/wallet-service/internal/models"
	"github.com/custodia-tech/wallet-service/internal/services"
)

// Tokener defines only the token methods needed by the wallet handlers.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WalletGetter defines the interface that the service must implement.
type WalletGetter interface {
	GetOrCreateDefaultWallet(ctx context.Context, userID uuid.UUID) (*models.WalletResponse, error)
}

// NewGetWalletHandler returns an HTTP handler for fetching the user's wallet.
// @Summary Get wallet
// @Description Returns the default wallet with per-asset balances and linked external wallets, creating an empty wallet on first access
// @Tags wallet
// @Produce json
// @Success 200 {object} models.WalletResponse "Wallet projection"
// @Failure 401 {object} models.WalletErrorResponse "Unauthorized"
// @Failure 500 {object} models.WalletErrorResponse "Internal server error"
// @Router /wallet [get]
// @Security BearerAuth
func NewGetWalletHandler(
	walletGetter WalletGetter,
	tokenGetter Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := authorize(w, r, tokenGetter)
		if !ok {
			return
		}

		wallet, err := walletGetter.GetOrCreateDefaultWallet(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get wallet", "userID", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(wallet)
	}
}

// RegisterWalletHandler registers the wallet fetch route
func RegisterWalletHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/wallet", h)
}

// authorize extracts and parses the bearer token, answering 401 itself on
// failure.
func authorize(w http.ResponseWriter, r *http.Request, tokenGetter Tokener) (*jwt.Claims, bool) {
	ctx := r.Context()

	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Error("unauthorized request: missing or invalid token")
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to parse token claims", "error", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	return claims, true
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.WalletErrorResponse{Error: message})
}

// serviceErrorStatus maps service sentinel errors to HTTP statuses and
// caller-facing messages. Unknown errors stay opaque.
func serviceErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		return http.StatusBadRequest, services.ErrInvalidAmount.Error()
	case errors.Is(err, services.ErrAssetNotFound):
		return http.StatusNotFound, services.ErrAssetNotFound.Error()
	case errors.Is(err, services.ErrInsufficientBalance):
		return http.StatusBadRequest, services.ErrInsufficientBalance.Error()
	case errors.Is(err, services.ErrNoLinkedWallet):
		return http.StatusBadRequest, services.ErrNoLinkedWallet.Error()
	case errors.Is(err, services.ErrUnlinkedAddress):
		return http.StatusBadRequest, services.ErrUnlinkedAddress.Error()
	case errors.Is(err, services.ErrInvalidSignature):
		return http.StatusBadRequest, services.ErrInvalidSignature.Error()
	case errors.Is(err, services.ErrExternalWalletNotFound):
		return http.StatusNotFound, services.ErrExternalWalletNotFound.Error()
	case errors.Is(err, services.ErrAccessDenied):
		return http.StatusForbidden, services.ErrAccessDenied.Error()
	case errors.Is(err, services.ErrGatewaySubmission):
		return http.StatusBadGateway, services.ErrGatewaySubmission.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
