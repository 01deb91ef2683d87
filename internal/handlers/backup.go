package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/models"
	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/units"
)

//go:generate mockgen -source=backup.go -destination=backup_mock.go -package=handlers

// BackupManager issues, lists and redeems backup codes.
type BackupManager interface {
	CreateCodes(ctx context.Context, userID string) ([]string, error)
	ListCodes(ctx context.Context, userID string) ([]string, error)
	Redeem(ctx context.Context, code, newUserID string) (int64, *models.Receipt, error)
}

// BackupListResponse carries backup codes
// swagger:model BackupListResponse
type BackupListResponse struct {
	Backups []string `json:"backups"`
}

// BackupRestoreRequest represents the JSON body for a restore
// swagger:model BackupRestoreRequest
type BackupRestoreRequest struct {
	// Backup code
	// required: true
	BackupID string `json:"backupId"`
}

// BackupRestoreResponse reports a restore
// swagger:model BackupRestoreResponse
type BackupRestoreResponse struct {
	Success bool   `json:"success"`
	TxID    string `json:"txId"`
	Amount  string `json:"amount"`
}

// NewBackupCreateHandler returns an HTTP handler that tops up the caller's
// backup codes and returns all of them.
// @Summary Create backup codes
// @Tags backup
// @Produce json
// @Success 200 {object} handlers.BackupListResponse
// @Failure 403 {object} handlers.ErrorResponse "Operation failed"
// @Router /backup/create [post]
// @Security BearerAuth
func NewBackupCreateHandler(svc BackupManager) http.HandlerFunc {
	return backupListHandler(svc.CreateCodes)
}

// NewBackupListHandler returns an HTTP handler that lists the caller's backup codes.
// @Summary List backup codes
// @Tags backup
// @Produce json
// @Success 200 {object} handlers.BackupListResponse
// @Failure 403 {object} handlers.ErrorResponse "Operation failed"
// @Router /backup/list [post]
// @Security BearerAuth
func NewBackupListHandler(svc BackupManager) http.HandlerFunc {
	return backupListHandler(svc.ListCodes)
}

func backupListHandler(list func(ctx context.Context, userID string) ([]string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		codes, err := list(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if codes == nil {
			codes = []string{}
		}
		writeJSON(w, http.StatusOK, BackupListResponse{Backups: codes})
	}
}

// NewBackupRestoreHandler returns an HTTP handler that moves the wallet
// behind a backup code to the caller.
// @Summary Restore backup
// @Tags backup
// @Accept json
// @Produce json
// @Param backupRestoreRequest body handlers.BackupRestoreRequest true "Restore Request"
// @Success 200 {object} handlers.BackupRestoreResponse
// @Failure 400 {object} handlers.ErrorResponse "Not restorable"
// @Failure 403 {object} handlers.ErrorResponse "Operation failed"
// @Failure 404 {object} handlers.ErrorResponse "Unknown code"
// @Router /backup/restore [post]
// @Security BearerAuth
func NewBackupRestoreHandler(svc BackupManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req BackupRestoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.BackupID == "" {
			writeBadRequest(w)
			return
		}

		amount, receipt, err := svc.Redeem(r.Context(), req.BackupID, userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, BackupRestoreResponse{
			Success: true,
			TxID:    receipt.TxID,
			Amount:  units.FromMinorUnits(amount),
		})
	}
}
