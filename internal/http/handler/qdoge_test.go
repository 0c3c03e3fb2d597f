package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"qdoge/internal/core"
	"qdoge/internal/http/handler"
	"qdoge/internal/http/handler/fake"
	"qdoge/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	gojwt "github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

var _ = Describe("QdogeHandler", func() {
	var (
		fakeLedger    *fake.LedgerService
		fakeValidator *fake.TokenValidator
		mux           *http.ServeMux
		recorder      *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		fakeLedger = new(fake.LedgerService)
		fakeValidator = new(fake.TokenValidator)
		recorder = httptest.NewRecorder()

		h := handler.NewQdogeHandler(zap.NewNop().Sugar(), payload.Decoder{}, fakeValidator, fakeLedger)

		mux = http.NewServeMux()
		mux.HandleFunc(handler.ServiceInfo, h.HandleServiceInfo)
		mux.HandleFunc(handler.InitDB, h.HandleInitDB)
		mux.HandleFunc(handler.IngestTrade, h.HandleIngestTrade)
		mux.HandleFunc(handler.GetTrades, h.HandleGetTrades)
		mux.HandleFunc(handler.GetWallet, h.HandleGetWallet)
		mux.HandleFunc(handler.SetBalances, h.HandleSetBalances)
		mux.HandleFunc(handler.PromoteWallet, h.HandlePromoteWallet)
		mux.HandleFunc(handler.GetWalletAwards, h.HandleGetWalletResults)
		mux.HandleFunc(handler.CreateEpoch, h.HandleCreateEpoch)
		mux.HandleFunc(handler.GetEpoch, h.HandleGetEpoch)
		mux.HandleFunc(handler.DeleteEpoch, h.HandleDeleteEpoch)
		mux.HandleFunc(handler.FundEpoch, h.HandleFundEpoch)
		mux.HandleFunc(handler.RecordResults, h.HandleRecordResults)
		mux.HandleFunc(handler.GetEpochResults, h.HandleGetEpochResults)
	})

	asAdmin := func(r *http.Request) *http.Request {
		r.Header.Set("AUTH_TOKEN", "valid-token")
		fakeValidator.ValidateReturns(gojwt.MapClaims{"role": "admin"}, nil)
		return r
	}

	decodeResponse := func() handler.Response {
		var resp handler.Response
		Expect(json.NewDecoder(recorder.Body).Decode(&resp)).To(Succeed())
		return resp
	}

	Describe("service info", func() {
		It("should report the service name and version", func() {
			req := httptest.NewRequest(http.MethodGet, "/qdoge", nil)
			mux.ServeHTTP(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Body.String()).To(ContainSubstring(handler.ServiceVersion))
		})
	})

	Describe("ingesting a trade", func() {
		var body string

		BeforeEach(func() {
			body = `{
				"type": "buy",
				"price": "0.25",
				"quantity": "400",
				"txHash": "0xdeadbeef",
				"takerWallet": "TAKER",
				"makerWallet": "MAKER",
				"tickdate": "2024-06-03T12:00:00Z"
			}`
		})

		When("the payload is valid", func() {
			BeforeEach(func() {
				fakeLedger.RecordTradeReturns(core.TradeRecord{TradeID: 42, TxHash: "0xdeadbeef"}, nil)
			})

			It("should respond with 201 and the stored record", func() {
				req := httptest.NewRequest(http.MethodPost, "/qdoge/trades", bytes.NewBufferString(body))
				mux.ServeHTTP(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusCreated))
				Expect(fakeLedger.RecordTradeCallCount()).To(Equal(1))

				_, msg := fakeLedger.RecordTradeArgsForCall(0)
				Expect(msg.TxHash).To(Equal("0xdeadbeef"))
				Expect(msg.Type).To(Equal("buy"))
			})
		})

		When("the tx hash was already ingested", func() {
			BeforeEach(func() {
				fakeLedger.RecordTradeReturns(core.TradeRecord{},
					fmt.Errorf("%w: 0xdeadbeef", core.ErrDuplicateTrade))
			})

			It("should respond with 409", func() {
				req := httptest.NewRequest(http.MethodPost, "/qdoge/trades", bytes.NewBufferString(body))
				mux.ServeHTTP(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusConflict))
				Expect(decodeResponse().Error).To(ContainSubstring("0xdeadbeef"))
			})
		})

		When("the price is not positive", func() {
			It("should respond with 400 without touching the ledger", func() {
				bad := `{
					"type": "buy",
					"price": "0",
					"quantity": "400",
					"txHash": "0xdeadbeef",
					"takerWallet": "TAKER",
					"makerWallet": "MAKER",
					"tickdate": "2024-06-03T12:00:00Z"
				}`
				req := httptest.NewRequest(http.MethodPost, "/qdoge/trades", bytes.NewBufferString(bad))
				mux.ServeHTTP(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeLedger.RecordTradeCallCount()).To(Equal(0))
			})
		})

		When("the payload carries an unknown field", func() {
			It("should respond with 400", func() {
				bad := `{"type": "buy", "bogus": true}`
				req := httptest.NewRequest(http.MethodPost, "/qdoge/trades", bytes.NewBufferString(bad))
				mux.ServeHTTP(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("retrieving trades", func() {
		When("a wallet is given", func() {
			BeforeEach(func() {
				fakeLedger.TradesForWalletReturns([]core.TradeRecord{{TradeID: 1}}, nil)
			})

			It("should query the requested side of the book", func() {
				req := httptest.NewRequest(http.MethodGet, "/qdoge/trades?wallet=WALLETAAA&side=taker", nil)
				mux.ServeHTTP(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusOK))
				_, wallet, side := fakeLedger.TradesForWalletArgsForCall(0)
				Expect(wallet).To(Equal("WALLETAAA"))
				Expect(side).To(Equal("taker"))
			})
		})

		When("a time range is given", func() {
			BeforeEach(func() {
				fakeLedger.TradesBetweenReturns([]core.TradeRecord{}, nil)
			})

			It("should query the window", func() {
				req := httptest.NewRequest(http.MethodGet,
					"/qdoge/trades?from=2024-06-01T00:00:00Z&to=2024-06-08T00:00:00Z", nil)
				mux.ServeHTTP(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusOK))
				Expect(fakeLedger.TradesBetweenCallCount()).To(Equal(1))
			})
		})

		When("neither wallet nor range is given", func() {
			It("should respond with 400", func() {
				req := httptest.NewRequest(http.MethodGet, "/qdoge/trades", nil)
				mux.ServeHTTP(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("retrieving a wallet", func() {
		When("the wallet is unknown", func() {
			BeforeEach(func() {
				fakeLedger.GetWalletReturns(core.WalletRecord{}, core.ErrWalletNotFound)
			})

			It("should respond with 404", func() {
				req := httptest.NewRequest(http.MethodGet, "/qdoge/users/GHOST", nil)
				mux.ServeHTTP(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
				_, wallet := fakeLedger.GetWalletArgsForCall(0)
				Expect(wallet).To(Equal("GHOST"))
			})
		})
	})

	Describe("admin authorization", func() {
		When("no token is sent", func() {
			It("should respond with 401", func() {
				req := httptest.NewRequest(http.MethodPost, "/qdoge/admin/init-db", nil)
				mux.ServeHTTP(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeLedger.ReprovisionCallCount()).To(Equal(0))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeValidator.ValidateReturns(nil, errors.New("token is expired"))
			})

			It("should respond with 401", func() {
				req := httptest.NewRequest(http.MethodPost, "/qdoge/admin/init-db", nil)
				req.Header.Set("AUTH_TOKEN", "junk")
				mux.ServeHTTP(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeLedger.ReprovisionCallCount()).To(Equal(0))
			})
		})

		When("the token lacks the admin role", func() {
			BeforeEach(func() {
				fakeValidator.ValidateReturns(gojwt.MapClaims{"role": "normal"}, nil)
			})

			It("should respond with 403", func() {
				req := httptest.NewRequest(http.MethodPost, "/qdoge/admin/init-db", nil)
				req.Header.Set("AUTH_TOKEN", "normal-token")
				mux.ServeHTTP(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusForbidden))
				Expect(fakeLedger.ReprovisionCallCount()).To(Equal(0))
			})
		})

		When("the token carries the admin role", func() {
			It("should run the provisioning", func() {
				req := asAdmin(httptest.NewRequest(http.MethodPost, "/qdoge/admin/init-db", nil))
				mux.ServeHTTP(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusOK))
				Expect(fakeLedger.ReprovisionCallCount()).To(Equal(1))
			})
		})
	})

	Describe("creating an epoch", func() {
		When("the tick range is inverted", func() {
			It("should respond with 400 without touching the ledger", func() {
				body := `{
					"epochNum": 7,
					"startTick": "2024-06-08T00:00:00Z",
					"endTick": "2024-06-01T00:00:00Z"
				}`
				req := httptest.NewRequest(http.MethodPost, "/qdoge/epochs", bytes.NewBufferString(body))
				mux.ServeHTTP(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeLedger.OpenEpochCallCount()).To(Equal(0))
			})
		})

		When("the epoch number is taken", func() {
			BeforeEach(func() {
				fakeLedger.OpenEpochReturns(core.EpochRecord{},
					fmt.Errorf("%w: 7", core.ErrDuplicateEpoch))
			})

			It("should respond with 409", func() {
				body := `{
					"epochNum": 7,
					"startTick": "2024-06-01T00:00:00Z",
					"endTick": "2024-06-08T00:00:00Z"
				}`
				req := httptest.NewRequest(http.MethodPost, "/qdoge/epochs", bytes.NewBufferString(body))
				mux.ServeHTTP(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Describe("deleting an epoch", func() {
		When("the path parameter is not an integer", func() {
			It("should respond with 400", func() {
				req := asAdmin(httptest.NewRequest(http.MethodDelete, "/qdoge/epochs/latest", nil))
				mux.ServeHTTP(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeLedger.RemoveEpochCallCount()).To(Equal(0))
			})
		})

		When("the epoch exists", func() {
			It("should remove it", func() {
				req := asAdmin(httptest.NewRequest(http.MethodDelete, "/qdoge/epochs/7", nil))
				mux.ServeHTTP(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusOK))
				_, epochNum := fakeLedger.RemoveEpochArgsForCall(0)
				Expect(epochNum).To(Equal(int64(7)))
			})
		})
	})

	Describe("recording airdrop results", func() {
		When("the ranking is valid", func() {
			It("should respond with 201", func() {
				body := `{
					"results": [
						{"grade": 1, "walletId": "WALLETAAA", "userBuyAmount": "900", "userAirdropAmount": "500"},
						{"grade": 2, "walletId": "WALLETBBB", "userBuyAmount": "400", "userAirdropAmount": "250"}
					]
				}`
				req := asAdmin(httptest.NewRequest(http.MethodPost, "/qdoge/epochs/7/results", bytes.NewBufferString(body)))
				mux.ServeHTTP(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusCreated))

				_, epochNum, entries := fakeLedger.RecordAirdropResultsArgsForCall(0)
				Expect(epochNum).To(Equal(int64(7)))
				Expect(entries).To(HaveLen(2))
			})
		})

		When("a grade is out of range", func() {
			It("should respond with 400 without touching the ledger", func() {
				body := `{
					"results": [
						{"grade": 11, "walletId": "WALLETAAA", "userBuyAmount": "900", "userAirdropAmount": "500"}
					]
				}`
				req := asAdmin(httptest.NewRequest(http.MethodPost, "/qdoge/epochs/7/results", bytes.NewBufferString(body)))
				mux.ServeHTTP(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeLedger.RecordAirdropResultsCallCount()).To(Equal(0))
			})
		})

		When("the ranking collides with stored results", func() {
			BeforeEach(func() {
				fakeLedger.RecordAirdropResultsReturns(
					fmt.Errorf("%w: grade taken", core.ErrDuplicateResult))
			})

			It("should respond with 409", func() {
				body := `{
					"results": [
						{"grade": 1, "walletId": "WALLETAAA", "userBuyAmount": "900", "userAirdropAmount": "500"}
					]
				}`
				req := asAdmin(httptest.NewRequest(http.MethodPost, "/qdoge/epochs/7/results", bytes.NewBufferString(body)))
				mux.ServeHTTP(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Describe("funding an epoch", func() {
		When("the epoch is unknown", func() {
			BeforeEach(func() {
				fakeLedger.FundEpochReturns(core.ErrEpochNotFound)
			})

			It("should respond with 404", func() {
				body := `{"totalAirdrop": "5000"}`
				req := asAdmin(httptest.NewRequest(http.MethodPut, "/qdoge/epochs/99/airdrop", bytes.NewBufferString(body)))
				mux.ServeHTTP(recorder, req)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("updating balances", func() {
		It("should pass the parsed decimals to the ledger", func() {
			body := `{"qubicBal": "100", "qdogeBal": "7"}`
			req := asAdmin(httptest.NewRequest(http.MethodPut, "/qdoge/users/WALLETAAA/balances", bytes.NewBufferString(body)))
			mux.ServeHTTP(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusOK))

			_, wallet, qubic, qdoge := fakeLedger.SetBalancesArgsForCall(0)
			Expect(wallet).To(Equal("WALLETAAA"))
			Expect(qubic.String()).To(Equal("100"))
			Expect(qdoge.String()).To(Equal("7"))
		})
	})
})
