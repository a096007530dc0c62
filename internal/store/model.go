// internal/store/model.go
//
// 定義「資料持久化層 (store layer)」的結構模型。
// 該層的責任是提供 Ledger 系統的純文字快照格式，
// 僅保存資料狀態，不涉入任何商業規則。
//
// ───────────────────────────────
// 設計理念：
// - **關注分離**：此層僅定義資料結構與編解碼，不驗證餘額或金額。
// - **可替換性**：未來若要改成資料庫後端，只需替換本層實作。
// ───────────────────────────────
package store

import "github.com/shopspring/decimal"

// Record 為交易紀錄在儲存層的序列化格式（對應檔案中一行）。
type Record struct {
	Stamp        string          // 交易時間戳（人類可讀文字）
	Kind         string          // CREDIT / DEBIT
	Amount       decimal.Decimal // 交易金額，恆為正
	Description  string          // 自由文字描述
	BalanceAfter decimal.Decimal // 交易後帳戶餘額
}

// Entry 為帳戶在儲存層的序列化格式：一行帳戶資料，
// 後接一行紀錄數與逐筆交易紀錄。
type Entry struct {
	Number   int             // 帳號
	Name     string          // 戶名
	Password string          // 密碼（明文，已知限制）
	Balance  decimal.Decimal // 目前餘額
	Records  []Record        // 交易歷史，由舊到新
}

// Snapshot 為 Ledger 狀態的完整快照：
// 下一個可配發帳號 + 全部帳戶（依帳號遞增排序，確保輸出具決定性）。
type Snapshot struct {
	NextNumber int
	Accounts   []Entry
}
