package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Xausdorf/vietqr-receive/internal/infrastructure/i18n"
	"github.com/Xausdorf/vietqr-receive/internal/usecase/generateqr"
	"github.com/Xausdorf/vietqr-receive/internal/usecase/receive"
)

type Handler struct {
	generateQRUC *generateqr.UseCase
	catalog      *i18n.Catalog
	logger       *slog.Logger

	defaultLang  string
	defaultTheme receive.Theme
}

func NewHandler(
	generateQRUC *generateqr.UseCase,
	catalog *i18n.Catalog,
	logger *slog.Logger,
	defaultLang, defaultTheme string,
) *Handler {
	return &Handler{
		generateQRUC: generateQRUC,
		catalog:      catalog,
		logger:       logger,
		defaultLang:  defaultLang,
		defaultTheme: receive.ParseTheme(defaultTheme),
	}
}

type ReceiveResponse struct {
	AccountNum  string `json:"account_num"`
	AccountName string `json:"account_name"`
	AmountText  string `json:"amount_text"`
	Amount      string `json:"amount"`
	AmountLabel string `json:"amount_label,omitempty"`
	Memo        string `json:"memo,omitempty"`
	QRURL       string `json:"qr_url"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func requestFrom(r *http.Request) generateqr.Request {
	q := r.URL.Query()
	return generateqr.Request{
		UserID: chi.URLParam(r, "user_id"),
		Amount: q.Get("amount"),
		Memo:   q.Get("memo"),
	}
}

func (h *Handler) HandleReceive(w http.ResponseWriter, r *http.Request) {
	res, err := h.generateQRUC.Execute(r.Context(), requestFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ReceiveResponse{
		AccountNum:  res.AccountNum,
		AccountName: res.AccountName,
		AmountText:  res.AmountText,
		Amount:      res.Amount,
		AmountLabel: res.AmountLabel,
		Memo:        res.Memo,
		QRURL:       res.QRURL,
	})
}

func (h *Handler) HandleShareQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.generateQRUC.ShareQR(r.Context(), requestFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(png)
}

func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, generateqr.ErrInvalidUserID), errors.Is(err, generateqr.ErrNegativeAmount):
		return http.StatusBadRequest
	case errors.Is(err, generateqr.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "receive request failed", "path", r.URL.Path, "error", err)
		msg = "qr generation failed"
	}

	body, _ := json.Marshal(errorResponse{Error: msg})
	http.Error(w, string(body), code)
}
