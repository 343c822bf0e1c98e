package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/zhouzirui/talklens/backend/internal/config"
	"github.com/zhouzirui/talklens/backend/internal/service/analysis"
)

func main() {
	filePath := flag.String("file", "", "LINE 导出的 .txt 文件路径，\"-\" 表示标准输入")
	pretty := flag.Bool("pretty", false, "缩进输出 JSON")
	verbose := flag.Bool("v", false, "在标准错误输出各阶段进度")
	timeout := flag.Duration("timeout", 30*time.Second, "解析超时时间")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		logger = logger.Level(zerolog.WarnLevel)
	}

	if err := godotenv.Load(); err != nil {
		logger.Debug().Err(err).Msg("无法加载 .env，改用系统环境变量")
	}

	if *filePath == "" {
		flag.Usage()
		logger.Fatal().Msg("请通过 -file 指定导出文件")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("配置加载失败")
	}

	raw, err := readInput(*filePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("读取文件失败")
	}

	svc := analysis.NewService(analysis.Options{
		Thresholds: cfg.Analysis.Thresholds,
		Location:   cfg.Analysis.Location,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := svc.AnalyzeWithProgress(ctx, raw, func(stage analysis.Stage, percent int) {
		logger.Info().Str("stage", string(stage)).Int("percent", percent).Msg("progress")
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, analysis.Message(err))
		logger.Debug().Err(err).Msg("analysis failed")
		os.Exit(1)
	}

	if err := writeResult(os.Stdout, result, *pretty); err != nil {
		logger.Fatal().Err(err).Msg("输出结果失败")
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeResult(w io.Writer, result interface{}, pretty bool) error {
	var (
		out []byte
		err error
	)
	if pretty {
		out, err = json.MarshalIndent(result, "", "  ")
	} else {
		out, err = json.Marshal(result)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
