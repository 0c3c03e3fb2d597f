package core_test

import (
	"context"
	"errors"
	"time"

	"qdoge/internal/core"
	"qdoge/internal/core/fake"
	"qdoge/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("Ledger", func() {
	var (
		fakeRepo        *fake.Repository
		fakeProvisioner *fake.Provisioner
		ledger          *core.Ledger
		ctx             context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeRepo = new(fake.Repository)
		fakeProvisioner = new(fake.Provisioner)
		ledger = core.NewLedger(zap.NewNop().Sugar(), fakeRepo, fakeProvisioner)
	})

	Describe("RecordTrade", func() {
		var msg core.TradeMessage

		BeforeEach(func() {
			msg = core.TradeMessage{
				Type:        "buy",
				Price:       decimal.RequireFromString("0.25"),
				Quantity:    decimal.NewFromInt(400),
				TxHash:      "0xdeadbeef",
				TakerWallet: "TAKER",
				MakerWallet: "MAKER",
				Tickdate:    time.Now().UTC(),
			}

			fakeRepo.InsertTradeStub = func(_ context.Context, trade repository.Trade) (repository.Trade, error) {
				trade.TradeID = 42
				return trade, nil
			}
		})

		It("should register both wallets before inserting the trade", func() {
			record, err := ledger.RecordTrade(ctx, msg)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeRepo.EnsureUserCallCount()).To(Equal(2))
			_, taker := fakeRepo.EnsureUserArgsForCall(0)
			_, maker := fakeRepo.EnsureUserArgsForCall(1)
			Expect(taker).To(Equal("TAKER"))
			Expect(maker).To(Equal("MAKER"))

			Expect(record.TradeID).To(Equal(int64(42)))
			Expect(record.TxHash).To(Equal("0xdeadbeef"))
			Expect(record.Type).To(Equal("buy"))
		})

		When("the wallet trades with itself", func() {
			BeforeEach(func() {
				msg.MakerWallet = msg.TakerWallet
			})

			It("should register the wallet only once", func() {
				_, err := ledger.RecordTrade(ctx, msg)
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.EnsureUserCallCount()).To(Equal(1))
			})
		})

		When("the tx hash was already ingested", func() {
			BeforeEach(func() {
				fakeRepo.InsertTradeStub = nil
				fakeRepo.InsertTradeReturns(repository.Trade{}, repository.ErrDuplicateTrade)
			})

			It("should return ErrDuplicateTrade", func() {
				_, err := ledger.RecordTrade(ctx, msg)
				Expect(err).To(MatchError(core.ErrDuplicateTrade))
			})
		})

		When("the ledger constraints reject the trade", func() {
			BeforeEach(func() {
				fakeRepo.InsertTradeStub = nil
				fakeRepo.InsertTradeReturns(repository.Trade{}, repository.ErrInvalidTrade)
			})

			It("should return ErrRejectedWrite", func() {
				_, err := ledger.RecordTrade(ctx, msg)
				Expect(err).To(MatchError(core.ErrRejectedWrite))
			})
		})

		When("registering the taker wallet fails", func() {
			BeforeEach(func() {
				fakeRepo.EnsureUserReturns(repository.User{}, errors.New("db down"))
			})

			It("should not attempt the insert", func() {
				_, err := ledger.RecordTrade(ctx, msg)
				Expect(err).To(MatchError(ContainSubstring("ensure taker wallet")))
				Expect(fakeRepo.InsertTradeCallCount()).To(Equal(0))
			})
		})
	})

	Describe("TradesForWallet", func() {
		BeforeEach(func() {
			fakeRepo.TradesByTakerReturns([]repository.Trade{{TradeID: 1, TakerWallet: "W"}}, nil)
			fakeRepo.TradesByMakerReturns([]repository.Trade{{TradeID: 2, MakerWallet: "W"}}, nil)
		})

		When("side is taker", func() {
			It("should only query the taker side", func() {
				records, err := ledger.TradesForWallet(ctx, "W", "taker")
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(1))
				Expect(records[0].TradeID).To(Equal(int64(1)))
				Expect(fakeRepo.TradesByMakerCallCount()).To(Equal(0))
			})
		})

		When("side is maker", func() {
			It("should only query the maker side", func() {
				records, err := ledger.TradesForWallet(ctx, "W", "maker")
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(1))
				Expect(records[0].TradeID).To(Equal(int64(2)))
				Expect(fakeRepo.TradesByTakerCallCount()).To(Equal(0))
			})
		})

		When("side is empty", func() {
			It("should merge both sides", func() {
				records, err := ledger.TradesForWallet(ctx, "W", "")
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
			})
		})
	})

	Describe("GetWallet", func() {
		When("the wallet exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserReturns(repository.User{
					WalletID: "WALLETAAA",
					QubicBal: decimal.NewFromInt(100),
					QdogeBal: decimal.NewFromInt(7),
					Role:     repository.UserRoleNormal,
				}, nil)
			})

			It("should return the wallet record", func() {
				record, err := ledger.GetWallet(ctx, "WALLETAAA")
				Expect(err).NotTo(HaveOccurred())
				Expect(record.WalletID).To(Equal("WALLETAAA"))
				Expect(record.Role).To(Equal("normal"))
				Expect(record.QubicBal.Equal(decimal.NewFromInt(100))).To(BeTrue())
			})
		})

		When("the wallet is unknown", func() {
			BeforeEach(func() {
				fakeRepo.GetUserReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return ErrWalletNotFound", func() {
				_, err := ledger.GetWallet(ctx, "GHOST")
				Expect(err).To(MatchError(core.ErrWalletNotFound))
			})
		})
	})

	Describe("SetBalances", func() {
		When("the wallet is unknown", func() {
			BeforeEach(func() {
				fakeRepo.UpdateBalancesReturns(repository.ErrUserNotFound)
			})

			It("should return ErrWalletNotFound", func() {
				err := ledger.SetBalances(ctx, "GHOST", decimal.Zero, decimal.Zero)
				Expect(err).To(MatchError(core.ErrWalletNotFound))
			})
		})
	})

	Describe("PromoteWallet", func() {
		It("should set the admin role", func() {
			err := ledger.PromoteWallet(ctx, "WALLETAAA")
			Expect(err).NotTo(HaveOccurred())

			_, wallet, role := fakeRepo.SetRoleArgsForCall(0)
			Expect(wallet).To(Equal("WALLETAAA"))
			Expect(role).To(Equal(repository.UserRoleAdmin))
		})
	})

	Describe("OpenEpoch", func() {
		var msg core.EpochMessage

		BeforeEach(func() {
			msg = core.EpochMessage{
				EpochNum:  7,
				StartTick: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				EndTick:   time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC),
			}

			fakeRepo.CreateEpochStub = func(_ context.Context, epoch repository.Epoch) (repository.Epoch, error) {
				return epoch, nil
			}
		})

		It("should create the epoch", func() {
			record, err := ledger.OpenEpoch(ctx, msg)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.EpochNum).To(Equal(int64(7)))
		})

		When("the epoch number is taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateEpochStub = nil
				fakeRepo.CreateEpochReturns(repository.Epoch{}, repository.ErrDuplicateEpoch)
			})

			It("should return ErrDuplicateEpoch", func() {
				_, err := ledger.OpenEpoch(ctx, msg)
				Expect(err).To(MatchError(core.ErrDuplicateEpoch))
			})
		})
	})

	Describe("FundEpoch", func() {
		When("the epoch is unknown", func() {
			BeforeEach(func() {
				fakeRepo.SetTotalAirdropReturns(repository.ErrEpochNotFound)
			})

			It("should return ErrEpochNotFound", func() {
				err := ledger.FundEpoch(ctx, 99, decimal.NewFromInt(1000))
				Expect(err).To(MatchError(core.ErrEpochNotFound))
			})
		})

		When("the total is negative", func() {
			BeforeEach(func() {
				fakeRepo.SetTotalAirdropReturns(repository.ErrInvalidEpoch)
			})

			It("should return ErrRejectedWrite", func() {
				err := ledger.FundEpoch(ctx, 7, decimal.NewFromInt(-1))
				Expect(err).To(MatchError(core.ErrRejectedWrite))
			})
		})
	})

	Describe("RemoveEpoch", func() {
		When("the epoch is unknown", func() {
			BeforeEach(func() {
				fakeRepo.DeleteEpochReturns(repository.ErrEpochNotFound)
			})

			It("should return ErrEpochNotFound", func() {
				err := ledger.RemoveEpoch(ctx, 99)
				Expect(err).To(MatchError(core.ErrEpochNotFound))
			})
		})
	})

	Describe("RecordAirdropResults", func() {
		var entries []core.AirdropEntry

		BeforeEach(func() {
			entries = []core.AirdropEntry{
				{Grade: 1, WalletID: "WALLETAAA", UserBuyAmount: decimal.NewFromInt(900), UserAirdropAmount: decimal.NewFromInt(500)},
				{Grade: 2, WalletID: "WALLETBBB", UserBuyAmount: decimal.NewFromInt(400), UserAirdropAmount: decimal.NewFromInt(250)},
			}
		})

		It("should save all entries under the epoch number", func() {
			err := ledger.RecordAirdropResults(ctx, 7, entries)
			Expect(err).NotTo(HaveOccurred())

			_, results := fakeRepo.SaveAirdropResultsArgsForCall(0)
			Expect(results).To(HaveLen(2))
			Expect(results[0].EpochNum).To(Equal(int64(7)))
			Expect(results[0].Grade).To(Equal(int64(1)))
			Expect(results[1].WalletID).To(Equal("WALLETBBB"))
		})

		When("the batch collides with stored results", func() {
			BeforeEach(func() {
				fakeRepo.SaveAirdropResultsReturns(repository.ErrDuplicateResult)
			})

			It("should return ErrDuplicateResult", func() {
				err := ledger.RecordAirdropResults(ctx, 7, entries)
				Expect(err).To(MatchError(core.ErrDuplicateResult))
			})
		})

		When("a referenced wallet or epoch is missing", func() {
			BeforeEach(func() {
				fakeRepo.SaveAirdropResultsReturns(repository.ErrMissingReference)
			})

			It("should return ErrRejectedWrite", func() {
				err := ledger.RecordAirdropResults(ctx, 7, entries)
				Expect(err).To(MatchError(core.ErrRejectedWrite))
			})
		})
	})

	Describe("Reprovision", func() {
		It("should run the provisioner", func() {
			err := ledger.Reprovision(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeProvisioner.RunCallCount()).To(Equal(1))
		})

		When("provisioning fails", func() {
			BeforeEach(func() {
				fakeProvisioner.RunReturns(errors.New("no admin access"))
			})

			It("should propagate the error", func() {
				err := ledger.Reprovision(ctx)
				Expect(err).To(MatchError(ContainSubstring("run provisioner")))
			})
		})
	})
})
