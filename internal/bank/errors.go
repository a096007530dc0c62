// internal/bank/errors.go
//
// 本檔集中定義「領域錯誤（domain errors）」。
// 這些錯誤屬於商業邏輯層級（非系統錯誤），由上層 CLI 轉成人類可讀的訊息印出。
// 統一集中管理錯誤類別能確保回報行為一致、方便測試與維護；
// 所有錯誤皆可復原，核心層不存在會中止行程的失敗。

package bank

import "errors"

var (
	// ErrNotFound 代表帳戶不存在（查詢、存提款或轉帳任一方帳號無效）。
	ErrNotFound = errors.New("invalid account number(s)")

	// ErrBadAmount 代表金額非法（<= 0）。
	ErrBadAmount = errors.New("invalid amount")

	// ErrInsufficient 代表餘額不足，導致提款或轉帳失敗。
	ErrInsufficient = errors.New("insufficient balance")

	// ErrNegativeDeposit 代表開戶初始存款為負。
	ErrNegativeDeposit = errors.New("initial deposit cannot be negative")

	// ErrTransferFailed 代表轉帳在餘額預檢通過後、扣款階段仍告失敗。
	// 單執行緒下理論上不可達，但扣款結果仍須檢查（見 Ledger.Transfer）。
	ErrTransferFailed = errors.New("transfer failed")
)
