// internal/bank/ledger.go

// Package bank 定義核心商業邏輯：開戶、登入驗證、存款、提款、轉帳、
// 交易歷史查詢與快照持久化。
// 採用單一互斥鎖 (sync.Mutex) 保障「變更記憶體狀態 → 改寫快照檔」
// 作為一個原子單元序列化執行，避免競爭條件污染檔案或違反 balance-after 不變量。
// 金額一律使用 shopspring/decimal，避免浮點誤差。
package bank

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"bankledger/internal/store"
)

// startNumber 為第一個配發的帳號；計數器隨快照保存，重啟後不重用舊號。
const startNumber = 1001

// Ledger 為聚合根 (Aggregate Root)：管理全系統帳戶。
// - mu：序列化所有讀寫，確保跨帳戶操作（轉帳）與持久化原子完成。
// - next：下一個可配發帳號，恆大於所有既有帳號。
// - accts：帳戶索引表（帳號 → *Account），內部所有指標只在臨界區內修改。
// - path：快照檔路徑；每次變更後整檔改寫，無增量或日誌式寫入。
// 一個行程一個 Ledger 實例，由呼叫端顯式建立與收尾，無全域狀態。
type Ledger struct {
	mu     sync.Mutex
	next   int
	accts  map[int]*Account
	path   string
	logger zerolog.Logger
}

// Open 建立 Ledger 並嘗試自快照檔還原狀態。
// 檔案不存在或無法解析時，以空帳本與預設計數器重新開始（記錄事件、不視為致命）。
func Open(path string, logger zerolog.Logger) *Ledger {
	l := &Ledger{
		next:   startNumber,
		accts:  make(map[int]*Account),
		path:   path,
		logger: logger,
	}
	snap, err := store.Load(path, logger)
	if err != nil {
		logger.Info().Str("path", path).Msg("No existing account data found. Starting fresh")
		return l
	}
	l.Restore(snap)
	logger.Info().Str("path", path).Int("accounts", len(snap.Accounts)).Msg("Accounts loaded")
	return l
}

// Close 執行收尾前的最後一次持久化。
func (l *Ledger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return store.Save(l.path, l.snapshotLocked())
}

// CreateAccount 以戶名、密碼與初始存款開戶；初始存款不得為負。
// 成功時配發下一個帳號、寫入快照並回傳新帳號。
// 不檢查戶名重複：帳號是唯一的識別鍵。
func (l *Ledger) CreateAccount(name, password string, initialDeposit decimal.Decimal) (int, error) {
	if initialDeposit.IsNegative() {
		return 0, ErrNegativeDeposit
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	number := l.next
	l.next++
	l.accts[number] = newAccount(number, name, password, initialDeposit)
	l.persistLocked()
	l.logger.Info().Int("account", number).Str("name", name).Msg("account created")
	return number, nil
}

// Login 驗證帳號與密碼：帳戶存在且密碼完全相符才回傳 true。
// 「帳號不存在」與「密碼錯誤」刻意不區分，一律回傳同樣的失敗結果。
func (l *Ledger) Login(number int, password string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.accts[number]
	return ok && a.CheckPassword(password)
}

// Lookup 依帳號取得帳戶目前快照；若不存在回傳 ErrNotFound。
// 回傳的是值拷貝，避免外部繞過 Ledger 直接改寫內部狀態。
func (l *Ledger) Lookup(number int) (*Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.accts[number]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

// Deposit 存款：於臨界區內委派給帳戶並改寫快照，回傳最新餘額。
func (l *Ledger) Deposit(number int, amount decimal.Decimal) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.accts[number]
	if !ok {
		return decimal.Zero, ErrNotFound
	}
	if err := a.Deposit(amount); err != nil {
		return decimal.Zero, err
	}
	l.persistLocked()
	l.logger.Info().Int("account", number).Str("amount", amount.String()).Msg("deposit")
	return a.Balance, nil
}

// Withdraw 提款：於臨界區內委派給帳戶並改寫快照，回傳最新餘額。
func (l *Ledger) Withdraw(number int, amount decimal.Decimal) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.accts[number]
	if !ok {
		return decimal.Zero, ErrNotFound
	}
	if err := a.Withdraw(amount); err != nil {
		return decimal.Zero, err
	}
	l.persistLocked()
	l.logger.Info().Int("account", number).Str("amount", amount.String()).Msg("withdraw")
	return a.Balance, nil
}

// Transfer 轉帳為「單一臨界區內」的原子操作，採兩階段進行：
// 先完成雙方餘額變動，再追加雙方轉帳腳紀錄，
// 使每一側的 balance-after 都反映變動後的最新餘額。
//  1. 解析雙方帳戶，任一方不存在即失敗。
//  2. 金額需 > 0。
//  3. 預檢來源餘額是否足夠（尚未碰觸任何狀態）。
//  4. 自來源扣款；預檢通過後扣款理應必成，但結果仍須檢查，
//     失敗時以一般性的轉帳失敗回報且狀態不變。
//  5. 存入目標帳戶。
//  6. 雙方各追加「恰好一筆」轉帳腳紀錄（描述指向對方帳號），
//     不重複產生一般存提款紀錄，維持「餘額 = 初始存款 + ΣCREDIT − ΣDEBIT」不變量。
//  7. 改寫快照。
//
// 來源帳戶與目標帳戶相同時照常執行（兩筆紀錄、淨額為零），不另行禁止。
// 快照寫入失敗時記憶體變更不回滾：在下一次成功寫入前，檔案與記憶體會暫時分歧，
// 此為設計上接受的耐久性缺口，不在此處私自修補。
func (l *Ledger) Transfer(from, to int, amount decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	src, ok1 := l.accts[from]
	dst, ok2 := l.accts[to]
	if !ok1 || !ok2 {
		return ErrNotFound
	}
	if amount.Sign() <= 0 {
		return ErrBadAmount
	}
	if src.Balance.LessThan(amount) {
		return ErrInsufficient
	}

	if err := src.debit(amount); err != nil {
		return ErrTransferFailed
	}
	dst.credit(amount)
	src.RecordTransferLeg(false, amount, to)
	dst.RecordTransferLeg(true, amount, from)

	l.persistLocked()
	l.logger.Info().
		Int("from", from).
		Int("to", to).
		Str("amount", amount.String()).
		Msg("transfer")
	return nil
}

// History 回傳指定帳戶的交易歷史（值拷貝，由舊到新）。
func (l *Ledger) History(number int) ([]Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.accts[number]
	if !ok {
		return nil, ErrNotFound
	}
	return a.History(), nil
}

// Snapshot 匯出帳本狀態到可持久化的 store.Snapshot。
// 帳戶依帳號遞增排序輸出，確保每次存檔內容具決定性。
func (l *Ledger) Snapshot() store.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

func (l *Ledger) snapshotLocked() store.Snapshot {
	numbers := make([]int, 0, len(l.accts))
	for n := range l.accts {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	snap := store.Snapshot{NextNumber: l.next}
	for _, n := range numbers {
		a := l.accts[n]
		entry := store.Entry{
			Number:   a.Number,
			Name:     a.Name,
			Password: a.password,
			Balance:  a.Balance,
		}
		for _, t := range a.history {
			entry.Records = append(entry.Records, store.Record{
				Stamp:        t.Stamp,
				Kind:         string(t.Kind),
				Amount:       t.Amount,
				Description:  t.Description,
				BalanceAfter: t.BalanceAfter,
			})
		}
		snap.Accounts = append(snap.Accounts, entry)
	}
	return snap
}

// Restore 由 store.Snapshot 還原帳本狀態：重建帳戶索引表與帳號計數器。
// 計數器取「快照值、預設起始值、最大既有帳號 + 1」三者之最大，
// 維持計數器恆大於所有既有帳號的不變量。
func (l *Ledger) Restore(snap store.Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.accts = make(map[int]*Account)
	l.next = startNumber
	if snap.NextNumber > l.next {
		l.next = snap.NextNumber
	}
	for _, e := range snap.Accounts {
		a := newAccount(e.Number, e.Name, e.Password, e.Balance)
		for _, r := range e.Records {
			a.history = append(a.history, Transaction{
				Stamp:        r.Stamp,
				Kind:         Kind(r.Kind),
				Amount:       r.Amount,
				Description:  r.Description,
				BalanceAfter: r.BalanceAfter,
			})
		}
		l.accts[a.Number] = a
		if a.Number >= l.next {
			l.next = a.Number + 1
		}
	}
}

// persistLocked 於持鎖狀態下將目前狀態整檔改寫到快照檔。
// 寫入失敗只記錄事件：操作的記憶體效果照常成立（接受的耐久性缺口）。
func (l *Ledger) persistLocked() {
	if err := store.Save(l.path, l.snapshotLocked()); err != nil {
		l.logger.Error().Err(err).Str("path", l.path).Msg("unable to save accounts")
	}
}
