package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"phasecalc"
	"phasecalc/diagram"
)

func main() {
	casePath := flag.String("case", "", "YAML 工况文件")
	plotPath := flag.String("plot", "", "相量图输出文件（.png/.svg/.pdf）")
	htmlPath := flag.String("html", "", "网页相量图输出文件")
	serve := flag.String("serve", "", "网页相量图服务地址，例如 :8080")
	verbose := flag.Bool("v", false, "输出调试日志")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *casePath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(*casePath, *plotPath, *htmlPath, *serve); err != nil {
		slog.Error("分析失败", "case", *casePath, "err", err)
		os.Exit(1)
	}
}

func run(casePath, plotPath, htmlPath, addr string) error {
	c, err := phasecalc.LoadCase(casePath)
	if err != nil {
		return err
	}
	slog.Debug("工况已加载", "name", c.Name, "connection", c.Connection, "currents", c.Currents != nil)

	report, err := c.Analyze()
	if err != nil {
		return err
	}
	if _, err := report.WriteTo(os.Stdout); err != nil {
		return err
	}

	if plotPath != "" {
		if err := writeFile(plotPath, func(f *os.File) error {
			format := strings.TrimPrefix(filepath.Ext(plotPath), ".")
			return diagram.Plot(f, c.Name, format, report.Vectors())
		}); err != nil {
			return err
		}
		slog.Info("相量图已生成", "file", plotPath)
	}
	charts := report.Charts()
	if htmlPath != "" {
		if err := writeFile(htmlPath, func(f *os.File) error { return charts.Render(f) }); err != nil {
			return err
		}
		slog.Info("网页相量图已生成", "file", htmlPath)
	}
	if addr != "" {
		slog.Info("网页相量图服务启动", "addr", addr)
		return http.ListenAndServe(addr, http.HandlerFunc(charts.Handler))
	}
	return nil
}

func writeFile(name string, write func(f *os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
