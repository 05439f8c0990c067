package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/civicstack/token-ledger/internal/domain"
	"github.com/civicstack/token-ledger/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestToken creates a token definition ready for insertion
func buildTestToken(symbol string) *schema.Token {
	return &schema.Token{
		ID:              ulid.Make().String(),
		Name:            fmt.Sprintf("%s Token", symbol),
		Symbol:          symbol,
		Decimals:        0,
		CreatorIdentity: "npub1creator",
		Metadata:        datatypes.JSON([]byte(`{"category":"test"}`)),
	}
}

// buildTestEntry creates a ledger entry for the given token
func buildTestEntry(tokenID string, entryType schema.EntryType, from, to *string, amount int64) *schema.LedgerEntry {
	return &schema.LedgerEntry{
		ID:           ulid.Make().String(),
		TokenID:      tokenID,
		EntryType:    entryType,
		FromIdentity: from,
		ToIdentity:   to,
		Amount:       amount,
		Timestamp:    time.Now().UTC(),
	}
}

// createTestToken inserts a token with its genesis entry and returns it
func createTestToken(t *testing.T, store Store, symbol string) *schema.Token {
	ctx := context.Background()
	token := buildTestToken(symbol)
	creator := token.CreatorIdentity
	genesis := buildTestEntry(token.ID, schema.EntryTypeGenesis, nil, &creator, 0)
	require.NoError(t, store.CreateToken(ctx, token, genesis))
	return token
}

// mintTo applies a mint of the given amount to the holder and returns the entry
func mintTo(t *testing.T, store Store, token *schema.Token, holder string, amount int64) *schema.LedgerEntry {
	ctx := context.Background()
	entry := buildTestEntry(token.ID, schema.EntryTypeMint, nil, &holder, amount)
	_, err := store.ApplyMint(ctx, token, entry)
	require.NoError(t, err)
	return entry
}

func strPtr(s string) *string {
	return &s
}

// =============================================================================
// Test: CreateToken
// =============================================================================

func testCreateToken(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("creates token with genesis entry", func(t *testing.T) {
		token := createTestToken(t, store, "CRED")

		got, err := store.GetTokenByID(ctx, token.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "CRED", got.Symbol)
		assert.Equal(t, int64(0), got.TotalSupply)

		entries, err := store.ListEntriesByToken(ctx, token.ID, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, schema.EntryTypeGenesis, entries[0].EntryType)
	})

	t.Run("rejects duplicate symbol", func(t *testing.T) {
		createTestToken(t, store, "DUPE")

		token := buildTestToken("DUPE")
		err := store.CreateToken(ctx, token, nil)
		require.ErrorIs(t, err, domain.ErrSymbolTaken)

		// The failed insert must not leave a token behind
		got, err := store.GetTokenByID(ctx, token.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("lookup by symbol", func(t *testing.T) {
		token := createTestToken(t, store, "LOOKUP")

		got, err := store.GetTokenBySymbol(ctx, "LOOKUP")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, token.ID, got.ID)

		missing, err := store.GetTokenBySymbol(ctx, "NOSUCH")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

// =============================================================================
// Test: ApplyMint
// =============================================================================

func testApplyMint(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("increments supply and balance", func(t *testing.T) {
		token := createTestToken(t, store, "MINT")

		holder := "npub1alice"
		entry := buildTestEntry(token.ID, schema.EntryTypeMint, nil, &holder, 100)
		balance, err := store.ApplyMint(ctx, token, entry)
		require.NoError(t, err)
		assert.Equal(t, int64(100), balance)

		got, err := store.GetTokenByID(ctx, token.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(100), got.TotalSupply)

		stored, err := store.GetEntryByID(ctx, entry.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, schema.EntryTypeMint, stored.EntryType)
		assert.Equal(t, int64(100), stored.Amount)
	})

	t.Run("rejects mint past the max supply ceiling", func(t *testing.T) {
		token := buildTestToken("CAPPED")
		token.MaxSupply = 150
		require.NoError(t, store.CreateToken(ctx, token, nil))

		mintTo(t, store, token, "npub1alice", 100)

		holder := "npub1bob"
		entry := buildTestEntry(token.ID, schema.EntryTypeMint, nil, &holder, 60)
		_, err := store.ApplyMint(ctx, token, entry)

		var supplyErr *domain.SupplyExceededError
		require.ErrorAs(t, err, &supplyErr)
		assert.Equal(t, int64(100), supplyErr.TotalSupply)
		assert.Equal(t, int64(150), supplyErr.MaxSupply)
		assert.Equal(t, int64(60), supplyErr.Requested)

		// Nothing applied: supply, balance and entry all untouched
		got, err := store.GetTokenByID(ctx, token.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(100), got.TotalSupply)

		balance, err := store.GetBalance(ctx, token.ID, "npub1bob")
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("unknown token", func(t *testing.T) {
		holder := "npub1alice"
		phantom := buildTestToken("PHANTOM")
		entry := buildTestEntry(phantom.ID, schema.EntryTypeMint, nil, &holder, 10)
		_, err := store.ApplyMint(ctx, phantom, entry)
		require.ErrorIs(t, err, domain.ErrTokenNotFound)
	})
}

// =============================================================================
// Test: ApplyBurn
// =============================================================================

func testApplyBurn(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("decrements balance and supply", func(t *testing.T) {
		token := createTestToken(t, store, "BURN")
		mintTo(t, store, token, "npub1alice", 100)

		holder := "npub1alice"
		entry := buildTestEntry(token.ID, schema.EntryTypeBurn, &holder, nil, 30)
		balance, err := store.ApplyBurn(ctx, token, entry)
		require.NoError(t, err)
		assert.Equal(t, int64(70), balance)

		got, err := store.GetTokenByID(ctx, token.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(70), got.TotalSupply)
	})

	t.Run("rejects overdraw", func(t *testing.T) {
		token := createTestToken(t, store, "BURNOVER")
		mintTo(t, store, token, "npub1alice", 20)

		holder := "npub1alice"
		entry := buildTestEntry(token.ID, schema.EntryTypeBurn, &holder, nil, 25)
		_, err := store.ApplyBurn(ctx, token, entry)

		var balErr *domain.InsufficientBalanceError
		require.ErrorAs(t, err, &balErr)
		assert.Equal(t, int64(20), balErr.Available)
		assert.Equal(t, int64(25), balErr.Required)

		// Supply conserved on failure
		got, err := store.GetTokenByID(ctx, token.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(20), got.TotalSupply)
	})

	t.Run("rejects burn from holder with no balance record", func(t *testing.T) {
		token := createTestToken(t, store, "BURNNOBAL")

		holder := "npub1ghost"
		entry := buildTestEntry(token.ID, schema.EntryTypeBurn, &holder, nil, 1)
		_, err := store.ApplyBurn(ctx, token, entry)

		var balErr *domain.InsufficientBalanceError
		require.ErrorAs(t, err, &balErr)
		assert.Equal(t, int64(0), balErr.Available)
	})
}

// =============================================================================
// Test: ApplyTransfer
// =============================================================================

func testApplyTransfer(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("moves balance between holders", func(t *testing.T) {
		token := createTestToken(t, store, "XFER")
		mintTo(t, store, token, "npub1alice", 100)

		entry := buildTestEntry(token.ID, schema.EntryTypeTransfer, strPtr("npub1alice"), strPtr("npub1bob"), 40)
		senderBalance, recipientBalance, err := store.ApplyTransfer(ctx, token, entry)
		require.NoError(t, err)
		assert.Equal(t, int64(60), senderBalance)
		assert.Equal(t, int64(40), recipientBalance)

		// Supply unchanged by a transfer
		got, err := store.GetTokenByID(ctx, token.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(100), got.TotalSupply)
	})

	t.Run("rejects transfer exceeding sender balance", func(t *testing.T) {
		token := createTestToken(t, store, "XFEROVER")
		mintTo(t, store, token, "npub1alice", 10)

		entry := buildTestEntry(token.ID, schema.EntryTypeTransfer, strPtr("npub1alice"), strPtr("npub1bob"), 11)
		_, _, err := store.ApplyTransfer(ctx, token, entry)

		var balErr *domain.InsufficientBalanceError
		require.ErrorAs(t, err, &balErr)

		balance, err := store.GetBalance(ctx, token.ID, "npub1bob")
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})
}

// =============================================================================
// Test: UnspentEntries / Reservations
// =============================================================================

func testUnspentEntries(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("returns unspent entries oldest first", func(t *testing.T) {
		token := createTestToken(t, store, "UNSPENT")
		first := mintTo(t, store, token, "npub1alice", 10)
		second := mintTo(t, store, token, "npub1alice", 20)
		mintTo(t, store, token, "npub1bob", 30)

		entries, err := store.ListUnspentEntries(ctx, token.ID, "npub1alice")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, first.ID, entries[0].ID)
		assert.Equal(t, second.ID, entries[1].ID)
	})

	t.Run("excludes reserved entries until expiry", func(t *testing.T) {
		token := createTestToken(t, store, "RESERVED")
		entry := mintTo(t, store, token, "npub1alice", 10)

		reservationID := uuid.NewString()
		err := store.ReserveEntries(ctx, []string{entry.ID}, reservationID, time.Now().Add(time.Hour))
		require.NoError(t, err)

		entries, err := store.ListUnspentEntries(ctx, token.ID, "npub1alice")
		require.NoError(t, err)
		assert.Empty(t, entries)

		require.NoError(t, store.ReleaseReservation(ctx, reservationID))

		entries, err = store.ListUnspentEntries(ctx, token.ID, "npub1alice")
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func testReserveEntries(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("conflicting reservation is rejected whole", func(t *testing.T) {
		token := createTestToken(t, store, "RESCONFLICT")
		first := mintTo(t, store, token, "npub1alice", 10)
		second := mintTo(t, store, token, "npub1alice", 20)

		err := store.ReserveEntries(ctx, []string{first.ID}, uuid.NewString(), time.Now().Add(time.Hour))
		require.NoError(t, err)

		// One of the two entries is held, so the whole reservation fails
		err = store.ReserveEntries(ctx, []string{first.ID, second.ID}, uuid.NewString(), time.Now().Add(time.Hour))
		require.ErrorIs(t, err, domain.ErrEntryReserved)

		// The free entry must not have been claimed by the failed attempt
		entries, err := store.ListUnspentEntries(ctx, token.ID, "npub1alice")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, second.ID, entries[0].ID)
	})

	t.Run("expired reservation can be taken over", func(t *testing.T) {
		token := createTestToken(t, store, "RESEXPIRED")
		entry := mintTo(t, store, token, "npub1alice", 10)

		err := store.ReserveEntries(ctx, []string{entry.ID}, uuid.NewString(), time.Now().Add(-time.Minute))
		require.NoError(t, err)

		err = store.ReserveEntries(ctx, []string{entry.ID}, uuid.NewString(), time.Now().Add(time.Hour))
		require.NoError(t, err)
	})

	t.Run("spent entry cannot be reserved", func(t *testing.T) {
		token := createTestToken(t, store, "RESSPENT")
		entry := mintTo(t, store, token, "npub1alice", 10)

		txRef := domain.TxRef("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
		err := store.ApplyConfirmTransfer(ctx, ConfirmTransferInput{
			TokenID:       token.ID,
			ExternalTxRef: txRef,
			Inputs:        []ConfirmInput{{EntryID: entry.ID, Sender: "npub1alice", Amount: 10}},
			OutputEntries: []*schema.LedgerEntry{
				buildTestEntry(token.ID, schema.EntryTypeTransfer, strPtr("npub1alice"), strPtr("npub1bob"), 10),
			},
		})
		require.NoError(t, err)

		err = store.ReserveEntries(ctx, []string{entry.ID}, uuid.NewString(), time.Now().Add(time.Hour))
		require.ErrorIs(t, err, domain.ErrEntryReserved)
	})
}

// =============================================================================
// Test: ApplyConfirmTransfer
// =============================================================================

func testApplyConfirmTransfer(t *testing.T, store Store) {
	ctx := context.Background()
	txRef := domain.TxRef("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")

	t.Run("spends inputs and credits outputs atomically", func(t *testing.T) {
		token := createTestToken(t, store, "CONFIRM")
		first := mintTo(t, store, token, "npub1alice", 10)
		second := mintTo(t, store, token, "npub1alice", 20)

		reservationID := uuid.NewString()
		err := store.ReserveEntries(ctx, []string{first.ID, second.ID}, reservationID, time.Now().Add(time.Hour))
		require.NoError(t, err)

		// 25 to bob, 5 change back to alice
		toBob := buildTestEntry(token.ID, schema.EntryTypeTransfer, strPtr("npub1alice"), strPtr("npub1bob"), 25)
		toBob.ExternalRef = txRef.String()
		change := buildTestEntry(token.ID, schema.EntryTypeTransfer, strPtr("npub1alice"), strPtr("npub1alice"), 5)
		change.ExternalRef = txRef.String()

		err = store.ApplyConfirmTransfer(ctx, ConfirmTransferInput{
			TokenID:       token.ID,
			ExternalTxRef: txRef,
			ReservationID: reservationID,
			Inputs: []ConfirmInput{
				{EntryID: first.ID, Sender: "npub1alice", Amount: 10},
				{EntryID: second.ID, Sender: "npub1alice", Amount: 20},
			},
			OutputEntries: []*schema.LedgerEntry{toBob, change},
		})
		require.NoError(t, err)

		aliceBalance, err := store.GetBalance(ctx, token.ID, "npub1alice")
		require.NoError(t, err)
		assert.Equal(t, int64(5), aliceBalance)

		bobBalance, err := store.GetBalance(ctx, token.ID, "npub1bob")
		require.NoError(t, err)
		assert.Equal(t, int64(25), bobBalance)

		// Inputs marked spent by the external transaction
		spent, err := store.GetEntryByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, txRef.String(), spent.SpentBy)
		assert.Empty(t, spent.ReservedBy)

		// Only the change output remains spendable by alice
		entries, err := store.ListUnspentEntries(ctx, token.ID, "npub1alice")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, change.ID, entries[0].ID)
	})

	t.Run("re-confirming a spent input fails without side effects", func(t *testing.T) {
		token := createTestToken(t, store, "CONFIRMTWICE")
		entry := mintTo(t, store, token, "npub1alice", 10)

		confirm := func(out *schema.LedgerEntry) error {
			return store.ApplyConfirmTransfer(ctx, ConfirmTransferInput{
				TokenID:       token.ID,
				ExternalTxRef: txRef,
				Inputs:        []ConfirmInput{{EntryID: entry.ID, Sender: "npub1alice", Amount: 10}},
				OutputEntries: []*schema.LedgerEntry{out},
			})
		}

		out := buildTestEntry(token.ID, schema.EntryTypeTransfer, strPtr("npub1alice"), strPtr("npub1bob"), 10)
		require.NoError(t, confirm(out))

		replay := buildTestEntry(token.ID, schema.EntryTypeTransfer, strPtr("npub1alice"), strPtr("npub1bob"), 10)
		err := confirm(replay)
		require.ErrorIs(t, err, domain.ErrEntryAlreadySpent)

		// Bob credited exactly once
		bobBalance, err := store.GetBalance(ctx, token.ID, "npub1bob")
		require.NoError(t, err)
		assert.Equal(t, int64(10), bobBalance)
	})
}

// =============================================================================
// Test: References / Redemption
// =============================================================================

func testReferences(t *testing.T, store Store) {
	ctx := context.Background()

	buildRef := func(externalRef string) *schema.UsedReference {
		return &schema.UsedReference{
			ID:             uuid.NewString(),
			ExternalRef:    externalRef,
			PayerIdentity:  "npub1payer",
			AmountReceived: 2100,
			TokensGranted:  21,
		}
	}

	t.Run("claim is first-wins", func(t *testing.T) {
		externalRef := "cccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccc"

		require.NoError(t, store.ClaimReference(ctx, buildRef(externalRef)))

		err := store.ClaimReference(ctx, buildRef(externalRef))
		require.ErrorIs(t, err, domain.ErrReferenceAlreadyUsed)

		used, err := store.IsReferenceUsed(ctx, externalRef)
		require.NoError(t, err)
		assert.True(t, used)

		record, err := store.GetReference(ctx, externalRef)
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, int64(2100), record.AmountReceived)
		assert.Equal(t, int64(21), record.TokensGranted)
	})

	t.Run("unknown reference", func(t *testing.T) {
		used, err := store.IsReferenceUsed(ctx, "dddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddd")
		require.NoError(t, err)
		assert.False(t, used)

		record, err := store.GetReference(ctx, "dddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddd")
		require.NoError(t, err)
		assert.Nil(t, record)
	})
}

func testApplyRedemption(t *testing.T, store Store) {
	ctx := context.Background()
	externalRef := "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"

	buildRedemption := func(token *schema.Token) (*schema.LedgerEntry, *schema.UsedReference) {
		holder := "npub1payer"
		entry := buildTestEntry(token.ID, schema.EntryTypeMint, nil, &holder, 21)
		ref := &schema.UsedReference{
			ID:             uuid.NewString(),
			ExternalRef:    externalRef,
			PayerIdentity:  holder,
			AmountReceived: 2100,
			TokensGranted:  21,
		}
		return entry, ref
	}

	t.Run("claims reference and mints in one transaction", func(t *testing.T) {
		token := createTestToken(t, store, "REDEEM")

		entry, ref := buildRedemption(token)
		balance, err := store.ApplyRedemption(ctx, token, entry, ref)
		require.NoError(t, err)
		assert.Equal(t, int64(21), balance)

		got, err := store.GetTokenByID(ctx, token.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(21), got.TotalSupply)

		used, err := store.IsReferenceUsed(ctx, externalRef)
		require.NoError(t, err)
		assert.True(t, used)
	})

	t.Run("replayed reference credits nothing", func(t *testing.T) {
		token := createTestToken(t, store, "REDEEMTWICE")

		entry, ref := buildRedemption(token)
		_, err := store.ApplyRedemption(ctx, token, entry, ref)
		require.NoError(t, err)

		replayEntry, replayRef := buildRedemption(token)
		_, err = store.ApplyRedemption(ctx, token, replayEntry, replayRef)
		require.ErrorIs(t, err, domain.ErrReferenceAlreadyUsed)

		balance, err := store.GetBalance(ctx, token.ID, "npub1payer")
		require.NoError(t, err)
		assert.Equal(t, int64(21), balance)

		got, err := store.GetTokenByID(ctx, token.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(21), got.TotalSupply)
	})
}

// =============================================================================
// Test: Anchoring
// =============================================================================

func testAnchoring(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("set external ref", func(t *testing.T) {
		token := createTestToken(t, store, "ANCHOR")
		entry := mintTo(t, store, token, "npub1alice", 10)

		ref := "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"
		require.NoError(t, store.SetEntryExternalRef(ctx, entry.ID, ref))

		got, err := store.GetEntryByID(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, ref, got.ExternalRef)
	})

	t.Run("lists unanchored entries oldest first with limit", func(t *testing.T) {
		token := createTestToken(t, store, "UNANCHORED")
		first := mintTo(t, store, token, "npub1alice", 10)
		second := mintTo(t, store, token, "npub1alice", 20)
		anchored := mintTo(t, store, token, "npub1alice", 30)
		require.NoError(t, store.SetEntryExternalRef(ctx, anchored.ID,
			"1111111111111111111111111111111111111111111111111111111111111111"))

		cutoff := time.Now().Add(time.Minute)
		entries, err := store.ListUnanchoredEntries(ctx, cutoff, 0)
		require.NoError(t, err)
		// Genesis plus the two unanchored mints
		require.Len(t, entries, 3)
		assert.Equal(t, schema.EntryTypeGenesis, entries[0].EntryType)
		assert.Equal(t, first.ID, entries[1].ID)
		assert.Equal(t, second.ID, entries[2].ID)

		limited, err := store.ListUnanchoredEntries(ctx, cutoff, 2)
		require.NoError(t, err)
		assert.Len(t, limited, 2)

		// Entries younger than the cutoff are left to the inline anchor attempt
		none, err := store.ListUnanchoredEntries(ctx, time.Now().Add(-time.Minute), 0)
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

// =============================================================================
// Test: Queries
// =============================================================================

func testQueries(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("balance of unknown holder is zero", func(t *testing.T) {
		token := createTestToken(t, store, "QBAL")

		balance, err := store.GetBalance(ctx, token.ID, "npub1nobody")
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("entries newest first with limit", func(t *testing.T) {
		token := createTestToken(t, store, "QENTRIES")
		mintTo(t, store, token, "npub1alice", 10)
		last := mintTo(t, store, token, "npub1alice", 20)

		entries, err := store.ListEntriesByToken(ctx, token.ID, 0)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, last.ID, entries[0].ID)

		limited, err := store.ListEntriesByToken(ctx, token.ID, 2)
		require.NoError(t, err)
		assert.Len(t, limited, 2)
	})

	t.Run("holdings exclude zero balances", func(t *testing.T) {
		first := createTestToken(t, store, "QHOLDA")
		second := createTestToken(t, store, "QHOLDB")
		mintTo(t, store, first, "npub1carol", 10)
		mintTo(t, store, second, "npub1carol", 20)

		// Burn the first holding down to zero
		holder := "npub1carol"
		burn := buildTestEntry(first.ID, schema.EntryTypeBurn, &holder, nil, 10)
		_, err := store.ApplyBurn(ctx, first, burn)
		require.NoError(t, err)

		holdings, err := store.ListHoldings(ctx, "npub1carol")
		require.NoError(t, err)
		require.Len(t, holdings, 1)
		assert.Equal(t, second.ID, holdings[0].Token.ID)
		assert.Equal(t, "QHOLDB", holdings[0].Token.Symbol)
		assert.Equal(t, int64(20), holdings[0].Balance)
	})

	t.Run("tokens by creator", func(t *testing.T) {
		token := buildTestToken("QCREATOR")
		token.CreatorIdentity = "npub1founder"
		require.NoError(t, store.CreateToken(ctx, token, nil))

		tokens, err := store.ListTokensByCreator(ctx, "npub1founder")
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.Equal(t, token.ID, tokens[0].ID)

		none, err := store.ListTokensByCreator(ctx, "npub1stranger")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("entry not found", func(t *testing.T) {
		got, err := store.GetEntryByID(ctx, ulid.Make().String())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// =============================================================================
// Test Suite Runner
// =============================================================================

// RunStoreTests runs the full store test suite against a Store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreateToken", testCreateToken},
		{"ApplyMint", testApplyMint},
		{"ApplyBurn", testApplyBurn},
		{"ApplyTransfer", testApplyTransfer},
		{"UnspentEntries", testUnspentEntries},
		{"ReserveEntries", testReserveEntries},
		{"ApplyConfirmTransfer", testApplyConfirmTransfer},
		{"References", testReferences},
		{"ApplyRedemption", testApplyRedemption},
		{"Anchoring", testAnchoring},
		{"Queries", testQueries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
