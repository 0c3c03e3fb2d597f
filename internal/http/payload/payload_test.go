package payload_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"qdoge/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/shopspring/decimal"
)

var _ = Describe("Payload", func() {
	Describe("Decoder", func() {
		var decoder payload.Decoder

		It("should decode and validate a well formed trade", func() {
			body := `{
				"type": "sell",
				"price": "0.000000000000000042",
				"quantity": "1000",
				"txHash": "0xabc",
				"takerWallet": "TAKER",
				"makerWallet": "MAKER",
				"tickdate": "2024-06-03T12:00:00Z"
			}`
			req := httptest.NewRequest(http.MethodPost, "/qdoge/trades", bytes.NewBufferString(body))

			var tradeReq payload.TradeRequest
			err := decoder.DecodeJSONPayload(req, &tradeReq)
			Expect(err).NotTo(HaveOccurred())
			Expect(tradeReq.Type).To(Equal("sell"))
			Expect(tradeReq.Price.String()).To(Equal("0.000000000000000042"))
		})

		It("should reject unknown fields", func() {
			body := `{"type": "buy", "bogus": true}`
			req := httptest.NewRequest(http.MethodPost, "/qdoge/trades", bytes.NewBufferString(body))

			var tradeReq payload.TradeRequest
			err := decoder.DecodeJSONPayload(req, &tradeReq)
			Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
		})
	})

	Describe("TradeRequest", func() {
		var req payload.TradeRequest

		BeforeEach(func() {
			req = payload.TradeRequest{
				Type:        "buy",
				Price:       decimal.RequireFromString("0.25"),
				Quantity:    decimal.NewFromInt(400),
				TxHash:      "0xdeadbeef",
				TakerWallet: "TAKER",
				MakerWallet: "MAKER",
				Tickdate:    time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC),
			}
		})

		It("should accept a valid request", func() {
			Expect(req.Validate()).To(Succeed())
		})

		It("should reject an unknown trade type", func() {
			req.Type = "short"
			Expect(req.Validate()).To(HaveOccurred())
		})

		It("should reject a zero price", func() {
			req.Price = decimal.Zero
			Expect(req.Validate()).To(HaveOccurred())
		})

		It("should reject a fractional quantity", func() {
			req.Quantity = decimal.RequireFromString("10.5")
			Expect(req.Validate()).To(HaveOccurred())
		})

		It("should reject an overlong wallet id", func() {
			req.TakerWallet = strings.Repeat("A", 61)
			Expect(req.Validate()).To(HaveOccurred())
		})

		It("should reject a missing tickdate", func() {
			req.Tickdate = time.Time{}
			Expect(req.Validate()).To(HaveOccurred())
		})
	})

	Describe("EpochRequest", func() {
		var req payload.EpochRequest

		BeforeEach(func() {
			req = payload.EpochRequest{
				EpochNum:  7,
				StartTick: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				EndTick:   time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC),
			}
		})

		It("should accept a valid window", func() {
			Expect(req.Validate()).To(Succeed())
		})

		It("should reject an inverted window", func() {
			req.StartTick, req.EndTick = req.EndTick, req.StartTick
			Expect(req.Validate()).To(MatchError(ContainSubstring("endTick must be after startTick")))
		})

		It("should reject a negative allocation", func() {
			req.TotalAirdrop = decimal.NewFromInt(-1)
			Expect(req.Validate()).To(HaveOccurred())
		})
	})

	Describe("FundRequest", func() {
		It("should reject a fractional allocation", func() {
			req := payload.FundRequest{TotalAirdrop: decimal.RequireFromString("10.5")}
			Expect(req.Validate()).To(HaveOccurred())
		})
	})

	Describe("AirdropResultsRequest", func() {
		var req payload.AirdropResultsRequest

		BeforeEach(func() {
			req = payload.AirdropResultsRequest{
				Results: []payload.AirdropResultEntry{
					{Grade: 1, WalletID: "WALLETAAA", UserBuyAmount: decimal.NewFromInt(900), UserAirdropAmount: decimal.NewFromInt(500)},
					{Grade: 2, WalletID: "WALLETBBB", UserBuyAmount: decimal.NewFromInt(400), UserAirdropAmount: decimal.NewFromInt(250)},
				},
			}
		})

		It("should accept a valid ranking", func() {
			Expect(req.Validate()).To(Succeed())
		})

		It("should reject an empty ranking", func() {
			req.Results = nil
			Expect(req.Validate()).To(HaveOccurred())
		})

		It("should reject more than ten entries", func() {
			entries := make([]payload.AirdropResultEntry, 11)
			for i := range entries {
				entries[i] = payload.AirdropResultEntry{
					Grade:    int64(i + 1),
					WalletID: "WALLET",
				}
			}
			req.Results = entries
			Expect(req.Validate()).To(HaveOccurred())
		})

		It("should reject a grade outside 1..10", func() {
			req.Results[0].Grade = 11
			Expect(req.Validate()).To(MatchError(ContainSubstring("result grade 11")))
		})

		It("should reject a negative airdrop amount", func() {
			req.Results[1].UserAirdropAmount = decimal.NewFromInt(-5)
			Expect(req.Validate()).To(HaveOccurred())
		})

		It("should convert all entries", func() {
			entries := req.ToEntries()
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].WalletID).To(Equal("WALLETAAA"))
			Expect(entries[1].Grade).To(Equal(int64(2)))
		})
	})
})
