// internal/bank/account.go
//
// Account 為單一帳戶實體：持有餘額與一份只增不減 (append-only) 的交易歷史。
// 存提款在同一步驟內「變更餘額＋追加紀錄」，確保兩者永遠一致；
// 轉帳腳 (transfer leg) 則只追加紀錄、不動餘額，餘額變動須於追加前完成。

package bank

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Account represents one bank account.
// Password 以明文儲存與比對，為設計上明定的已知限制（雜湊會改變快照格式）。
type Account struct {
	Number   int
	Name     string
	Balance  decimal.Decimal
	password string
	history  []Transaction
}

// newAccount 建立帳戶；帳號由 Ledger 配發，初始餘額不另外產生交易紀錄。
func newAccount(number int, name, password string, balance decimal.Decimal) *Account {
	return &Account{Number: number, Name: name, Balance: balance, password: password}
}

// CheckPassword 比對密碼：純字串相等，無鎖定或次數限制。
func (a *Account) CheckPassword(candidate string) bool {
	return a.password == candidate
}

// credit 僅增加餘額、不留紀錄；金額合法性由呼叫端先行驗證。
// 與 debit 一同構成轉帳兩階段套用的第一階段（先動餘額、後補紀錄）。
func (a *Account) credit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}

// debit 僅扣減餘額、不留紀錄：金額需 > 0 且不得超過餘額（餘額恆非負）。
func (a *Account) debit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrBadAmount
	}
	if a.Balance.LessThan(amount) {
		return ErrInsufficient
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Deposit 存款：金額需 > 0，否則回傳 ErrBadAmount 且狀態不變。
// 成功時增加餘額並追加一筆 CREDIT 紀錄。
func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrBadAmount
	}
	a.credit(amount)
	a.history = append(a.history, newTransaction(Credit, amount, "Deposit", a.Balance))
	return nil
}

// Withdraw 提款：金額需 > 0 且不得超過餘額，否則狀態不變。
// 成功時減少餘額並追加一筆 DEBIT 紀錄。
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := a.debit(amount); err != nil {
		return err
	}
	a.history = append(a.history, newTransaction(Debit, amount, "Withdrawal", a.Balance))
	return nil
}

// RecordTransferLeg 追加轉帳腳紀錄（CREDIT/DEBIT 依 isCredit 而定），
// 描述指向對方帳號，balance-after 取帳戶「目前」餘額。
// 本方法不變更餘額：呼叫前餘額必須已調整完畢（轉帳兩階段的第一階段），
// 如此每一側的紀錄才會反映變動後的最新餘額。
func (a *Account) RecordTransferLeg(isCredit bool, amount decimal.Decimal, counterparty int) {
	kind, desc := Debit, fmt.Sprintf("Transfer to %d", counterparty)
	if isCredit {
		kind, desc = Credit, fmt.Sprintf("Transfer from %d", counterparty)
	}
	a.history = append(a.history, newTransaction(kind, amount, desc, a.Balance))
}

// History 回傳全部交易紀錄的拷貝（由舊到新），避免外部改寫內部切片。
func (a *Account) History() []Transaction {
	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}
