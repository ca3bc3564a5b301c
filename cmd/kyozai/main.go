package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/yagi-creator/educational-materials-analyzer/internal/config"
	"github.com/yagi-creator/educational-materials-analyzer/internal/server"
	"github.com/yagi-creator/educational-materials-analyzer/internal/util"
)

var (
	port    = flag.Int("port", 0, "サービスポート (config.toml より優先)")
	devMode = flag.Bool("dev", false, "開発モード")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  教材注文データ分析システム")
	fmt.Println("==========================================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("設定の読み込みに失敗しました。既定設定を使用します: %v", err)
		cfg = config.DefaultConfig()
	}

	// コマンドライン引数が設定を上書きする
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}

	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("サービス起動中、ポート %d で待機します...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("サービスの起動に失敗しました: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		fmt.Printf("ブラウザを開いています: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("ブラウザを自動で開けませんでした。手動でアクセスしてください: %s\n", url)
		}
	} else {
		fmt.Printf("開発モード: %s にアクセスしてください\n", url)
	}

	fmt.Println("\nCtrl+C で停止します...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nサービスを終了します")
}
