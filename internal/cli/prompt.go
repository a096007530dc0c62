// internal/cli/prompt.go
//
// 本檔負責統一輸入提示與解析。
// 透過集中管理讀取與轉型，可確保整個選單的錯誤處理一致：
//   - 輸入端關閉（EOF）→ 回傳 ok=false，讓呼叫端結束目前動作。
//   - 數字／金額解析失敗 → 印出提示後回傳 ok=false，回到選單重新開始。

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// readLine 印出提示並讀取一行輸入（去除前後空白）。
// 僅在輸入端關閉時回傳 ok=false。
func (c *CLI) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// readNumber 讀取一行並解析為整數（帳號輸入用）。
func (c *CLI) readNumber(prompt string) (int, bool) {
	line, ok := c.readLine(prompt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid input!")
		return 0, false
	}
	return n, true
}

// readAmount 讀取一行並解析為十進位金額。
// 僅做語法解析；金額是否合法（> 0、足夠）由 bank 層判定。
func (c *CLI) readAmount(prompt string) (decimal.Decimal, bool) {
	line, ok := c.readLine(prompt)
	if !ok {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(line)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid input!")
		return decimal.Zero, false
	}
	return amount, true
}
