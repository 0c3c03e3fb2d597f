package handler

import (
	"errors"
	"fmt"
	"net/http"
	"qdoge/internal/core"
	"qdoge/internal/http/handler/middleware"
	"qdoge/internal/http/payload"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const ServiceVersion = "v0.1.0"

var (
	ServiceInfo     = "GET /qdoge"
	InitDB          = "POST /qdoge/admin/init-db"
	IngestTrade     = "POST /qdoge/trades"
	GetTrades       = "GET /qdoge/trades"
	GetWallet       = "GET /qdoge/users/{walletID}"
	SetBalances     = "PUT /qdoge/users/{walletID}/balances"
	PromoteWallet   = "POST /qdoge/users/{walletID}/promote"
	GetWalletAwards = "GET /qdoge/users/{walletID}/results"
	CreateEpoch     = "POST /qdoge/epochs"
	GetEpoch        = "GET /qdoge/epochs/{epochNum}"
	DeleteEpoch     = "DELETE /qdoge/epochs/{epochNum}"
	FundEpoch       = "PUT /qdoge/epochs/{epochNum}/airdrop"
	RecordResults   = "POST /qdoge/epochs/{epochNum}/results"
	GetEpochResults = "GET /qdoge/epochs/{epochNum}/results"
)

type QdogeHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	tokenValidator   TokenValidator
	ledger           LedgerService
}

func NewQdogeHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, tokenValidator TokenValidator, ledgerService LedgerService) *QdogeHandler {
	return &QdogeHandler{
		logs:             logger,
		requestValidator: requestValidator,
		tokenValidator:   tokenValidator,
		ledger:           ledgerService,
	}
}

func (h *QdogeHandler) HandleServiceInfo(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{
		"service": "Qdoge Kennel Club API",
		"version": ServiceVersion,
	}
	h.respond(w, resp, http.StatusOK, requestID(r))
}

// HandleInitDB re-runs the provisioning procedure on demand. Restricted
// to tokens carrying the admin role claim.
func (h *QdogeHandler) HandleInitDB(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	if !h.authorizeAdmin(w, r, InitDB, reqID) {
		return
	}

	if err := h.ledger.Reprovision(r.Context()); err != nil {
		h.respond(w, Response{
			Message: "Database initialization failed",
			Error:   oopsErr,
		}, http.StatusInternalServerError,
			reqID)
		h.logs.Errorw("failed to reprovision database",
			"error", err,
			"handler", InitDB,
			"request_id", reqID)
		return
	}

	h.respond(w, Response{
		Message: "Database initialized",
		Data:    map[string]string{"status": "success"},
	}, http.StatusOK, reqID)
}

func (h *QdogeHandler) HandleIngestTrade(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	var tradeReq payload.TradeRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &tradeReq); err != nil {
		h.respond(w, Response{
			Message: "Could not ingest trade",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			reqID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", IngestTrade,
			"request_id", reqID)
		return
	}

	record, err := h.ledger.RecordTrade(r.Context(), tradeReq.ToMessage())
	if err != nil {
		resp := Response{Message: "Could not ingest trade"}
		httpCode := http.StatusInternalServerError

		switch {
		case errors.Is(err, core.ErrDuplicateTrade):
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		case errors.Is(err, core.ErrRejectedWrite):
			httpCode = http.StatusUnprocessableEntity
			resp.Error = err.Error()
		default:
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, reqID)
		h.logs.Errorw("failed to record trade",
			"error", err,
			"handler", IngestTrade,
			"request_id", reqID)
		return
	}

	h.logs.Infow("trade ingested",
		"txHash", record.TxHash,
		"handler", IngestTrade,
		"request_id", reqID)

	h.respond(w, Response{Data: record}, http.StatusCreated, reqID)
}

func (h *QdogeHandler) HandleGetTrades(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)
	query := r.URL.Query()

	wallet := query.Get("wallet")
	if wallet != "" {
		trades, err := h.ledger.TradesForWallet(r.Context(), wallet, query.Get("side"))
		if err != nil {
			h.respond(w, Response{
				Message: "Could not retrieve trades",
				Error:   oopsErr,
			}, http.StatusInternalServerError,
				reqID)
			h.logs.Errorw("failed to get trades for wallet",
				"error", err,
				"handler", GetTrades,
				"request_id", reqID)
			return
		}

		h.respond(w, Response{Data: trades}, http.StatusOK, reqID)
		return
	}

	from, errFrom := time.Parse(time.RFC3339, query.Get("from"))
	to, errTo := time.Parse(time.RFC3339, query.Get("to"))
	if errFrom != nil || errTo != nil {
		h.respond(w, Response{
			Message: "Could not retrieve trades",
			Error:   "either wallet or a valid from/to RFC3339 range is required",
		}, http.StatusBadRequest,
			reqID)
		return
	}

	trades, err := h.ledger.TradesBetween(r.Context(), from, to)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve trades",
			Error:   oopsErr,
		}, http.StatusInternalServerError,
			reqID)
		h.logs.Errorw("failed to get trades between",
			"error", err,
			"handler", GetTrades,
			"request_id", reqID)
		return
	}

	h.respond(w, Response{Data: trades}, http.StatusOK, reqID)
}

func (h *QdogeHandler) HandleGetWallet(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)
	walletID := r.PathValue("walletID")

	wallet, err := h.ledger.GetWallet(r.Context(), walletID)
	if err != nil {
		resp := Response{Message: "Could not retrieve wallet"}
		httpCode := http.StatusInternalServerError

		if errors.Is(err, core.ErrWalletNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, reqID)
		h.logs.Errorw("failed to get wallet",
			"error", err,
			"handler", GetWallet,
			"request_id", reqID)
		return
	}

	h.respond(w, Response{Data: wallet}, http.StatusOK, reqID)
}

// HandleSetBalances overwrites a wallet's balances with values computed
// by the external balance engine. Admin only.
func (h *QdogeHandler) HandleSetBalances(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	if !h.authorizeAdmin(w, r, SetBalances, reqID) {
		return
	}

	walletID := r.PathValue("walletID")

	var balancesReq payload.BalancesRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &balancesReq); err != nil {
		h.respond(w, Response{
			Message: "Could not update balances",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			reqID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SetBalances,
			"request_id", reqID)
		return
	}

	err := h.ledger.SetBalances(r.Context(), walletID, balancesReq.QubicBal, balancesReq.QdogeBal)
	if err != nil {
		resp := Response{Message: "Could not update balances"}
		httpCode := http.StatusInternalServerError

		if errors.Is(err, core.ErrWalletNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, reqID)
		h.logs.Errorw("failed to set balances",
			"error", err,
			"handler", SetBalances,
			"request_id", reqID)
		return
	}

	h.respond(w, Response{Message: "Balances updated"}, http.StatusOK, reqID)
}

func (h *QdogeHandler) HandlePromoteWallet(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	if !h.authorizeAdmin(w, r, PromoteWallet, reqID) {
		return
	}

	walletID := r.PathValue("walletID")

	err := h.ledger.PromoteWallet(r.Context(), walletID)
	if err != nil {
		resp := Response{Message: "Could not promote wallet"}
		httpCode := http.StatusInternalServerError

		if errors.Is(err, core.ErrWalletNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, reqID)
		h.logs.Errorw("failed to promote wallet",
			"error", err,
			"handler", PromoteWallet,
			"request_id", reqID)
		return
	}

	h.respond(w, Response{Message: "Wallet promoted"}, http.StatusOK, reqID)
}

func (h *QdogeHandler) HandleGetWalletResults(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)
	walletID := r.PathValue("walletID")

	entries, err := h.ledger.WalletResults(r.Context(), walletID)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve airdrop results",
			Error:   oopsErr,
		}, http.StatusInternalServerError,
			reqID)
		h.logs.Errorw("failed to get wallet airdrop results",
			"error", err,
			"handler", GetWalletAwards,
			"request_id", reqID)
		return
	}

	h.respond(w, Response{Data: entries}, http.StatusOK, reqID)
}

func (h *QdogeHandler) HandleCreateEpoch(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	var epochReq payload.EpochRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &epochReq); err != nil {
		h.respond(w, Response{
			Message: "Could not create epoch",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			reqID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CreateEpoch,
			"request_id", reqID)
		return
	}

	record, err := h.ledger.OpenEpoch(r.Context(), epochReq.ToMessage())
	if err != nil {
		resp := Response{Message: "Could not create epoch"}
		httpCode := http.StatusInternalServerError

		switch {
		case errors.Is(err, core.ErrDuplicateEpoch):
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		case errors.Is(err, core.ErrRejectedWrite):
			httpCode = http.StatusUnprocessableEntity
			resp.Error = err.Error()
		default:
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, reqID)
		h.logs.Errorw("failed to open epoch",
			"error", err,
			"handler", CreateEpoch,
			"request_id", reqID)
		return
	}

	h.respond(w, Response{Data: record}, http.StatusCreated, reqID)
}

func (h *QdogeHandler) HandleGetEpoch(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	epochNum, ok := h.epochNum(w, r, GetEpoch, reqID)
	if !ok {
		return
	}

	record, err := h.ledger.GetEpoch(r.Context(), epochNum)
	if err != nil {
		resp := Response{Message: "Could not retrieve epoch"}
		httpCode := http.StatusInternalServerError

		if errors.Is(err, core.ErrEpochNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, reqID)
		h.logs.Errorw("failed to get epoch",
			"error", err,
			"handler", GetEpoch,
			"request_id", reqID)
		return
	}

	h.respond(w, Response{Data: record}, http.StatusOK, reqID)
}

func (h *QdogeHandler) HandleDeleteEpoch(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	if !h.authorizeAdmin(w, r, DeleteEpoch, reqID) {
		return
	}

	epochNum, ok := h.epochNum(w, r, DeleteEpoch, reqID)
	if !ok {
		return
	}

	if err := h.ledger.RemoveEpoch(r.Context(), epochNum); err != nil {
		resp := Response{Message: "Could not delete epoch"}
		httpCode := http.StatusInternalServerError

		if errors.Is(err, core.ErrEpochNotFound) {
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		} else {
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, reqID)
		h.logs.Errorw("failed to delete epoch",
			"error", err,
			"handler", DeleteEpoch,
			"request_id", reqID)
		return
	}

	h.respond(w, Response{Message: "Epoch deleted"}, http.StatusOK, reqID)
}

func (h *QdogeHandler) HandleFundEpoch(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	if !h.authorizeAdmin(w, r, FundEpoch, reqID) {
		return
	}

	epochNum, ok := h.epochNum(w, r, FundEpoch, reqID)
	if !ok {
		return
	}

	var fundReq payload.FundRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &fundReq); err != nil {
		h.respond(w, Response{
			Message: "Could not fund epoch",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			reqID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", FundEpoch,
			"request_id", reqID)
		return
	}

	if err := h.ledger.FundEpoch(r.Context(), epochNum, fundReq.TotalAirdrop); err != nil {
		resp := Response{Message: "Could not fund epoch"}
		httpCode := http.StatusInternalServerError

		switch {
		case errors.Is(err, core.ErrEpochNotFound):
			httpCode = http.StatusNotFound
			resp.Error = err.Error()
		case errors.Is(err, core.ErrRejectedWrite):
			httpCode = http.StatusUnprocessableEntity
			resp.Error = err.Error()
		default:
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, reqID)
		h.logs.Errorw("failed to fund epoch",
			"error", err,
			"handler", FundEpoch,
			"request_id", reqID)
		return
	}

	h.respond(w, Response{Message: "Epoch funded"}, http.StatusOK, reqID)
}

func (h *QdogeHandler) HandleRecordResults(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	if !h.authorizeAdmin(w, r, RecordResults, reqID) {
		return
	}

	epochNum, ok := h.epochNum(w, r, RecordResults, reqID)
	if !ok {
		return
	}

	var resultsReq payload.AirdropResultsRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &resultsReq); err != nil {
		h.respond(w, Response{
			Message: "Could not record airdrop results",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			reqID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", RecordResults,
			"request_id", reqID)
		return
	}

	if err := h.ledger.RecordAirdropResults(r.Context(), epochNum, resultsReq.ToEntries()); err != nil {
		resp := Response{Message: "Could not record airdrop results"}
		httpCode := http.StatusInternalServerError

		switch {
		case errors.Is(err, core.ErrDuplicateResult):
			httpCode = http.StatusConflict
			resp.Error = err.Error()
		case errors.Is(err, core.ErrRejectedWrite):
			httpCode = http.StatusUnprocessableEntity
			resp.Error = err.Error()
		default:
			resp.Error = oopsErr
		}

		h.respond(w, resp, httpCode, reqID)
		h.logs.Errorw("failed to record airdrop results",
			"error", err,
			"handler", RecordResults,
			"request_id", reqID)
		return
	}

	h.logs.Infow("airdrop results recorded",
		"epoch", epochNum,
		"entries", len(resultsReq.Results),
		"handler", RecordResults,
		"request_id", reqID)

	h.respond(w, Response{Message: "Airdrop results recorded"}, http.StatusCreated, reqID)
}

func (h *QdogeHandler) HandleGetEpochResults(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r)

	epochNum, ok := h.epochNum(w, r, GetEpochResults, reqID)
	if !ok {
		return
	}

	entries, err := h.ledger.EpochResults(r.Context(), epochNum)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve airdrop results",
			Error:   oopsErr,
		}, http.StatusInternalServerError,
			reqID)
		h.logs.Errorw("failed to get epoch airdrop results",
			"error", err,
			"handler", GetEpochResults,
			"request_id", reqID)
		return
	}

	h.respond(w, Response{Data: entries}, http.StatusOK, reqID)
}

// authorizeAdmin rejects the request unless AUTH_TOKEN holds a valid
// token with the admin role claim. Reports whether handling may proceed.
func (h *QdogeHandler) authorizeAdmin(w http.ResponseWriter, r *http.Request, handlerName, reqID string) bool {
	authToken := r.Header.Get("AUTH_TOKEN")
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			reqID)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", handlerName, "request_id", reqID)
		return false
	}

	claims, err := h.tokenValidator.Validate(authToken)
	if err != nil {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "invalid token",
		}, http.StatusUnauthorized,
			reqID)
		h.logs.Errorw("failed to validate token",
			"error", err,
			"handler", handlerName,
			"request_id", reqID)
		return false
	}

	if role, _ := claims["role"].(string); role != "admin" {
		h.respond(w, Response{
			Message: "Authorization failed",
			Error:   "admin role required",
		}, http.StatusForbidden,
			reqID)
		h.logs.Errorw("token lacks admin role", "handler", handlerName, "request_id", reqID)
		return false
	}

	return true
}

func (h *QdogeHandler) epochNum(w http.ResponseWriter, r *http.Request, handlerName, reqID string) (int64, bool) {
	epochNum, err := strconv.ParseInt(r.PathValue("epochNum"), 10, 64)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   "epochNum must be an integer",
		}, http.StatusBadRequest,
			reqID)
		h.logs.Errorw("invalid epochNum parameter",
			"error", err,
			"handler", handlerName,
			"request_id", reqID)
		return 0, false
	}

	return epochNum, true
}

func requestID(r *http.Request) string {
	if reqIDCtx := r.Context().Value(middleware.RequestIDKey); reqIDCtx != nil {
		return reqIDCtx.(string)
	}
	return ""
}
