package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gonewx/cozyroom/pkg/config"
	"gopkg.in/yaml.v3"
)

// knownSections 场景参数文件的顶层字段
var knownSections = map[string]bool{
	"rain":   true,
	"fire":   true,
	"cat":    true,
	"camera": true,
	"timer":  true,
}

func main() {
	path := flag.String("file", "data/scene.yaml", "场景参数文件")
	flag.Parse()

	data, err := os.ReadFile(*path)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}

	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		fmt.Printf("❌ YAML 解析失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ YAML 格式正确\n")

	unknown := 0
	for key, node := range raw {
		if !knownSections[key] {
			fmt.Printf("❌ 第 %d 行: 未知字段 %q\n", node.Line, key)
			unknown++
		}
	}

	cfg, err := config.ParseSceneConfig(data)
	if err != nil {
		fmt.Printf("❌ 参数校验失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 雨滴 %d，火焰 %d，火星 %d，倒计时 %d 秒\n",
		cfg.Rain.Count, cfg.Fire.FlameCount, cfg.Fire.SparkCount, cfg.Timer.InitialSeconds)

	if unknown > 0 {
		fmt.Printf("❌ 有 %d 个未知字段\n", unknown)
		os.Exit(1)
	}
}
