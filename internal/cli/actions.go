// internal/cli/actions.go
//
// 本檔實作各選單選項。每個方法對應一個選項：
// 蒐集原始輸入 → 呼叫一個 Ledger 操作 → 印出結果／錯誤訊息。
// 商業規則（金額驗證、餘額檢查、持久化時機）全部留在 bank 層。

package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// createAccount 處理開戶：戶名、密碼、初始存款 → Ledger.CreateAccount。
func (c *CLI) createAccount() {
	name, ok := c.readLine("Enter your name: ")
	if !ok {
		return
	}
	password, ok := c.readLine("Create password: ")
	if !ok {
		return
	}
	amount, ok := c.readAmount("Enter initial deposit amount: ")
	if !ok {
		return
	}

	number, err := c.ledger.CreateAccount(name, password, amount)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "\n=== Account Created Successfully ===\n")
	fmt.Fprintf(c.out, "Your account details:\n")
	fmt.Fprintf(c.out, "Account Number: %d\n", number)
	fmt.Fprintf(c.out, "Name: %s\n", name)
	fmt.Fprintf(c.out, "Initial Balance: $%s\n", amount.StringFixed(2))
	fmt.Fprintf(c.out, "\nPLEASE SAVE YOUR ACCOUNT NUMBER FOR FUTURE LOGIN!\n")
	fmt.Fprintln(c.out, strings.Repeat("=", 40))
}

// login 處理登入；成功時配發一組 session ID 供日誌關聯後續操作。
// 失敗一律回覆同樣訊息，不區分帳號不存在或密碼錯誤。
func (c *CLI) login() {
	number, ok := c.readNumber("Enter account number: ")
	if !ok {
		return
	}
	password, ok := c.readLine("Enter password: ")
	if !ok {
		return
	}

	if !c.ledger.Login(number, password) {
		c.logger.Warn().Int("account", number).Msg("login rejected")
		fmt.Fprintln(c.out, "Invalid credentials!")
		return
	}
	c.current = number
	c.session = uuid.NewString()
	c.logger.Info().Str("session", c.session).Int("account", number).Msg("login")
	fmt.Fprintln(c.out, "Login successful!")
}

// checkBalance 顯示目前登入帳戶的餘額。
func (c *CLI) checkBalance() {
	a, err := c.ledger.Lookup(c.current)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Current balance: $%s\n", a.Balance.StringFixed(2))
}

// deposit 處理存款。
func (c *CLI) deposit() {
	amount, ok := c.readAmount("Enter amount to deposit: ")
	if !ok {
		return
	}
	if _, err := c.ledger.Deposit(c.current, amount); err != nil {
		fmt.Fprintln(c.out, "Invalid amount!")
		return
	}
	fmt.Fprintln(c.out, "Deposit successful!")
}

// withdraw 處理提款。
func (c *CLI) withdraw() {
	amount, ok := c.readAmount("Enter amount to withdraw: ")
	if !ok {
		return
	}
	if _, err := c.ledger.Withdraw(c.current, amount); err != nil {
		fmt.Fprintln(c.out, "Invalid amount or insufficient balance!")
		return
	}
	fmt.Fprintln(c.out, "Withdrawal successful!")
}

// transfer 處理轉帳：收款帳號與金額 → Ledger.Transfer（原子操作）。
func (c *CLI) transfer() {
	to, ok := c.readNumber("Enter recipient's account number: ")
	if !ok {
		return
	}
	amount, ok := c.readAmount("Enter amount to transfer: ")
	if !ok {
		return
	}
	if err := c.ledger.Transfer(c.current, to, amount); err != nil {
		fmt.Fprintf(c.out, "%v\n", err)
		return
	}
	fmt.Fprintln(c.out, "Transfer successful")
}

// history 逐筆列出目前登入帳戶的交易歷史（由舊到新）。
func (c *CLI) history() {
	records, err := c.ledger.History(c.current)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "\n=== Transaction History for Account %d ===\n", c.current)
	for _, t := range records {
		fmt.Fprintf(c.out, "Date: %s\n", t.Stamp)
		fmt.Fprintf(c.out, "Type: %s\n", t.Kind)
		fmt.Fprintf(c.out, "Amount: $%s\n", t.Amount.StringFixed(2))
		fmt.Fprintf(c.out, "Description: %s\n", t.Description)
		fmt.Fprintf(c.out, "Balance after: $%s\n", t.BalanceAfter.StringFixed(2))
		fmt.Fprintln(c.out, strings.Repeat("-", 50))
	}
}

// logout 結束目前登入狀態。
func (c *CLI) logout() {
	c.logger.Info().Str("session", c.session).Int("account", c.current).Msg("logout")
	c.current = 0
	c.session = ""
	fmt.Fprintln(c.out, "Logged out successfully!")
}
