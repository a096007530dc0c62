// cmd/bankcli/main.go

// 本程式提供開戶、登入、存提款、轉帳與交易歷史查詢的互動式文字選單。
// 此檔案負責組裝各模組（bank, cli, 日誌），
// 啟動時自快照檔還原狀態，結束（含 SIGINT/SIGTERM）前做最後一次保存。

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"bankledger/internal/bank"
	"bankledger/internal/cli"
)

func main() {
	const dataFile = "bank_data.txt"

	// 日誌走 stderr，避免與 stdout 上的選單互相穿插。
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// 初始化帳本核心：嘗試載入上次的快照，若不存在則以空帳本啟動。
	ledger := bank.Open(dataFile, logger)

	// 監聽 SIGINT/SIGTERM 訊號，安全結束前保存狀態。
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		if err := ledger.Close(); err != nil {
			logger.Error().Err(err).Msg("final save failed")
		}
		os.Exit(0)
	}()

	// 啟動選單主迴圈；選擇離開或輸入端關閉時返回。
	cli.New(ledger, os.Stdin, os.Stdout, logger).Run()

	if err := ledger.Close(); err != nil {
		logger.Error().Err(err).Msg("final save failed")
	}
}
