// Package bank 定義核心領域模型與業務規則。
// 本檔定義交易紀錄 Transaction 與其種類 Kind，不含任何 CLI 或儲存細節。

package bank

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind distinguishes credit from debit records.
type Kind string

const (
	Credit Kind = "CREDIT"
	Debit  Kind = "DEBIT"
)

// Transaction is one immutable record of a balance-affecting event.
// BalanceAfter captures the owning account's balance right after the event.
type Transaction struct {
	Stamp        string
	Kind         Kind
	Amount       decimal.Decimal
	Description  string
	BalanceAfter decimal.Decimal
}

// newTransaction 建立一筆交易紀錄，並在建立當下擷取牆鐘時間作為時間戳。
// 時間戳採 time.ANSIC 文字格式（不含逗號，可安全存入逗號分隔的快照檔）。
// 本層不做任何驗證；金額為正、餘額正確等不變量由 Account 保證。
func newTransaction(kind Kind, amount decimal.Decimal, desc string, balanceAfter decimal.Decimal) Transaction {
	return Transaction{
		Stamp:        time.Now().Format(time.ANSIC),
		Kind:         kind,
		Amount:       amount,
		Description:  desc,
		BalanceAfter: balanceAfter,
	}
}
