// Package models defines the core domain models for finflow.
//
// Two groups of models live here:
//
//   - Wallet: Transaction and TransactionKind, backing the session wallet's
//     append-only history.
//   - Group split: Member, Expense and Settlement, used by the group
//     settlement engine.
//
// Settlements are computed outputs, not stored entities: every split
// calculation replaces the previous settlement list wholesale. Expense keeps
// a snapshot of the payer's name (PaidByName) taken at creation time; it is
// never synced afterwards, because renaming is not supported and removing a
// member deletes their expenses anyway.
//
// All state built from these models lives in memory for the lifetime of one
// session; nothing is persisted across restarts.
package models
