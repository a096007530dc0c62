// internal/cli/menu.go
//
// Package cli
// ─────────────────────────────────────────────
// 提供互動式文字選單，作為 bank 模組的應用層 (Application Layer)。
// 每個選項僅負責：
//  1. 蒐集並解析使用者輸入（字串／數字）
//  2. 呼叫 bank 層「恰好一個」操作
//  3. 印出結果或錯誤訊息
//
// 此設計使邏輯分層清晰：
//   - bank：純商業邏輯，與終端機無關。
//   - cli：處理輸入輸出（選單、提示、格式化）。
//   - store：負責持久化（由 bank 層驅動）。
//
// 選單分兩個狀態：未登入（開戶／登入／離開）與已登入
// （餘額／存款／提款／轉帳／交易歷史／登出）。
// 所有輸入錯誤都回到選單重新提示，永不讓行程崩潰。
package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"bankledger/internal/bank"
)

// CLI 為選單層核心結構：
// - ledger：注入商業邏輯層（帳本核心）。
// - in/out：注入輸入輸出端，測試時可換成記憶體緩衝完成端對端模擬。
// - current：目前登入的帳號；0 代表未登入。
// - session：每次登入配發的關聯 ID，僅用於日誌追蹤。
type CLI struct {
	ledger *bank.Ledger
	in     *bufio.Scanner
	out    io.Writer
	logger zerolog.Logger

	current int
	session string
}

// New 建立選單層；in 通常為 os.Stdin、out 為 os.Stdout。
func New(l *bank.Ledger, in io.Reader, out io.Writer, logger zerolog.Logger) *CLI {
	return &CLI{ledger: l, in: bufio.NewScanner(in), out: out, logger: logger}
}

// Run 執行選單主迴圈，直到使用者選擇離開或輸入端關閉（EOF）為止。
// 明確以字串比對分派選項（非反射式），確保高可讀性與低魔法性。
func (c *CLI) Run() {
	for {
		if c.current == 0 {
			choice, ok := c.readLine("\n=== Banking System ===\n" +
				"1. Create Account\n" +
				"2. Login\n" +
				"3. Exit\n" +
				"Enter choice (1-3): ")
			if !ok {
				return
			}
			switch choice {
			case "1":
				c.createAccount()
			case "2":
				c.login()
			case "3":
				fmt.Fprintln(c.out, "Thank you for using our banking system!")
				return
			default:
				fmt.Fprintln(c.out, "Invalid choice!")
			}
		} else {
			choice, ok := c.readLine("\n=== Account Menu ===\n" +
				"1. Check Balance\n" +
				"2. Deposit\n" +
				"3. Withdraw\n" +
				"4. Transfer Money\n" +
				"5. Transaction History\n" +
				"6. Logout\n" +
				"Enter choice (1-6): ")
			if !ok {
				return
			}
			switch choice {
			case "1":
				c.checkBalance()
			case "2":
				c.deposit()
			case "3":
				c.withdraw()
			case "4":
				c.transfer()
			case "5":
				c.history()
			case "6":
				c.logout()
			default:
				fmt.Fprintln(c.out, "Invalid choice!")
			}
		}
	}
}
