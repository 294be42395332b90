package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand("test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestAnalyze(t *testing.T) {
	out, err := run(t, "analyze")
	if err != nil {
		t.Fatalf("执行失败 %s", err)
	}
	for _, want := range []string{"Net Work Output    = 187.58 kJ/kg", "Thermal Efficiency = 30.42 %", "Note:"} {
		if !strings.Contains(out, want) {
			t.Errorf("输出缺少 %q:\n%s", want, out)
		}
	}
}

func TestAnalyzeTableJSON(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "analyze", "-m", "table", "--json", "--plot", dir, "--html", filepath.Join(dir, "cycle.html"))
	if err != nil {
		t.Fatalf("执行失败 %s", err)
	}
	var rec struct {
		Runs []struct {
			Mode  string
			Steam struct{ Efficiency float64 }
		}
	}
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("JSON 输出无效 %s", err)
	}
	if len(rec.Runs) != 1 || rec.Runs[0].Mode != "air.variable+steam.if97" {
		t.Errorf("记录不正确 %+v", rec)
	}
	for _, name := range []string{"Brayton_T-h.png", "Rankine_h-s.png", "cycle.html"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("缺少输出文件 %s", name)
		}
	}
}

func TestSweep(t *testing.T) {
	out, err := run(t, "sweep", "--param", "pressure_ratio", "--values", "4,8,12")
	if err != nil {
		t.Fatalf("执行失败 %s", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("输出行数不正确:\n%s", out)
	}
	for i, v := range []string{"4", "8", "12"} {
		if !strings.HasPrefix(lines[i+1], v+" ") {
			t.Errorf("第 %d 行顺序不正确: %s", i+1, lines[i+1])
		}
	}
	if _, err := run(t, "sweep", "--param", "humidity"); err == nil {
		t.Errorf("未知参数应返回错误")
	}
}

func TestConfigAndInit(t *testing.T) {
	file := filepath.Join(t.TempDir(), "spec.yaml")
	if _, err := run(t, "init", "-o", file); err != nil {
		t.Fatalf("导出失败 %s", err)
	}
	if _, err := run(t, "analyze", "-c", file, "--steam", "steam.table", "-m", "table"); err != nil {
		t.Errorf("使用导出的工况分析失败 %s", err)
	}
	if _, err := run(t, "analyze", "-m", "magic"); err == nil {
		t.Errorf("未知模式应返回错误")
	}
}

func TestFluids(t *testing.T) {
	out, err := run(t, "fluids")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"air.ideal", "air.variable", "steam.if97", "steam.table"} {
		if !strings.Contains(out, name) {
			t.Errorf("缺少后端 %s", name)
		}
	}
}

func TestAnalyzeWatchRequiresFile(t *testing.T) {
	if _, err := run(t, "analyze", "--watch"); err == nil || !strings.Contains(err.Error(), "--watch") {
		t.Errorf("缺少工况文件应返回错误, 实际 %v", err)
	}
}
