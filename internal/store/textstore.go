// internal/store/textstore.go
//
// 提供純文字快照的序列化與反序列化實作。
// 檔案格式（逗號分隔，以行群組為單位）：
//
//	<nextAccountNumber>
//	<accountCount>
//	<accountNumber>,<name>,<password>,<balance>
//	<transactionCountForThisAccount>
//	<stamp>,<kind>,<amount>,<description>,<balanceAfter>
//	...（每帳戶重複）...
//
// 寫入採「原子寫入」策略 (atomic write)：先寫入 .tmp 檔，再以 rename() 取代原檔，
// 可避免中途寫入失敗導致檔案損壞，確保檔案不會被觀察到半寫入狀態。
//
// 已知限制：欄位以逗號天真切分、不做跳脫 (escaping)，
// 戶名或描述若含逗號，重新載入時該筆資料會解析失敗而被丟棄。
// 此為設計上明定要保留的限制，請勿在本層私自修補。
package store

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Load 讀取指定路徑的快照檔並解析成 Snapshot。
// 檔案不存在或表頭毀損時回傳錯誤，由上層決定以空帳本重新開始
// （上層不區分「首次執行」與「檔案毀損」）。
// 無法解析成預期欄位數的帳戶行或交易行會被略過、不中斷載入，
// 並留下 debug 層級的日誌事件供事後追查。
func Load(path string, logger zerolog.Logger) (Snapshot, error) {
	var snap Snapshot
	f, err := os.Open(path)
	if err != nil {
		return snap, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)

	next, err := readInt(sc)
	if err != nil {
		return snap, fmt.Errorf("read next account number: %w", err)
	}
	count, err := readInt(sc)
	if err != nil {
		return snap, fmt.Errorf("read account count: %w", err)
	}
	snap.NextNumber = next

	for i := 0; i < count; i++ {
		line, ok := readLine(sc)
		if !ok {
			break // 檔案提前截斷：保留已成功讀到的部分
		}
		entry, entryOK := parseEntry(line)
		if !entryOK {
			logger.Debug().Str("path", path).Str("line", line).Msg("malformed account line skipped")
		}

		// 無論帳戶行是否可解析，其後的交易區塊都必須消化掉，
		// 否則行群組會錯位、後續帳戶全數誤讀。
		n, err := readInt(sc)
		if err != nil {
			break
		}
		for j := 0; j < n; j++ {
			txLine, ok := readLine(sc)
			if !ok {
				break
			}
			rec, recOK := parseRecord(txLine)
			if !recOK {
				logger.Debug().Str("path", path).Str("line", txLine).Msg("malformed record skipped")
				continue
			}
			entry.Records = append(entry.Records, rec)
		}
		if entryOK {
			snap.Accounts = append(snap.Accounts, entry)
		}
	}
	return snap, nil
}

// Save 將 Snapshot 序列化為純文字檔案，並採原子方式寫入。
// 流程：
//  1. 寫入 path+".tmp" 暫存檔（先全數落入 bufio 再 flush）。
//  2. 寫入完成後使用 os.Rename() 取代正式檔案。
//
// 這樣設計確保在寫入中斷（例如停電或程式崩潰）時，原檔不會損壞。
func Save(path string, snap Snapshot) error {
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)

	fmt.Fprintf(w, "%d\n", snap.NextNumber)
	fmt.Fprintf(w, "%d\n", len(snap.Accounts))
	for _, a := range snap.Accounts {
		fmt.Fprintf(w, "%d,%s,%s,%s\n", a.Number, a.Name, a.Password, a.Balance.String())
		fmt.Fprintf(w, "%d\n", len(a.Records))
		for _, r := range a.Records {
			fmt.Fprintf(w, "%s,%s,%s,%s,%s\n",
				r.Stamp, r.Kind, r.Amount.String(), r.Description, r.BalanceAfter.String())
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	// 原子替換
	return os.Rename(tmp, path)
}

// readLine 取出下一行；掃描結束（EOF）時回傳 false。
func readLine(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	return sc.Text(), true
}

// readInt 取出下一行並解析為整數（表頭與各交易區塊的筆數行）。
func readInt(sc *bufio.Scanner) (int, error) {
	line, ok := readLine(sc)
	if !ok {
		return 0, fmt.Errorf("unexpected end of file")
	}
	return strconv.Atoi(strings.TrimSpace(line))
}

// parseEntry 解析帳戶行：必須恰好 4 欄且數值欄可解析，否則整筆略過。
func parseEntry(line string) (Entry, bool) {
	fields := strings.Split(line, ",")
	if len(fields) != 4 {
		return Entry{}, false
	}
	number, err := strconv.Atoi(fields[0])
	if err != nil {
		return Entry{}, false
	}
	balance, err := decimalFrom(fields[3])
	if err != nil {
		return Entry{}, false
	}
	return Entry{Number: number, Name: fields[1], Password: fields[2], Balance: balance}, true
}

// decimalFrom 解析十進位文字欄位（容忍前後空白）。
func decimalFrom(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// parseRecord 解析交易行：必須恰好 5 欄且金額欄可解析，否則整筆略過。
func parseRecord(line string) (Record, bool) {
	fields := strings.Split(line, ",")
	if len(fields) != 5 {
		return Record{}, false
	}
	amount, err := decimalFrom(fields[2])
	if err != nil {
		return Record{}, false
	}
	after, err := decimalFrom(fields[4])
	if err != nil {
		return Record{}, false
	}
	return Record{
		Stamp:        fields[0],
		Kind:         fields[1],
		Amount:       amount,
		Description:  fields[3],
		BalanceAfter: after,
	}, true
}
