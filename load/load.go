package load

import (
	"bytes"
	"cycle/types"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate 工况校验器，并发安全
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(gasLevel, types.GasSpec{})
	v.RegisterStructValidation(steamLevel, types.SteamSpec{})
	return v
}

// gasLevel 给定透平入口温度时必须为正
func gasLevel(sl validator.StructLevel) {
	g := sl.Current().Interface().(types.GasSpec)
	if g.Heat == types.HeatFiring && g.TurbineInletT <= 0 {
		sl.ReportError(g.TurbineInletT, "TurbineInletT", "turbine_inlet_temperature", "required_firing", "")
	}
}

// steamLevel 冷凝压力与冷凝温度至少给定一个
func steamLevel(sl validator.StructLevel) {
	s := sl.Current().Interface().(types.SteamSpec)
	if s.CondenserPressure <= 0 && s.CondenserTemperature <= 0 {
		sl.ReportError(s.CondenserPressure, "CondenserPressure", "condenser_pressure", "required_condenser", "")
	}
}

// Validate 校验工况取值范围
func Validate(spec types.CycleSpecification) error {
	if err := validate.Struct(spec); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			msg := make([]string, 0, len(errs))
			for _, e := range errs {
				msg = append(msg, fmt.Sprintf("%s(%s=%v)", e.Namespace(), e.Tag(), e.Value()))
			}
			return fmt.Errorf("工况校验失败: %s: %w", strings.Join(msg, ", "), err)
		}
		return err
	}
	return nil
}

// LoadString 加载 YAML 工况，未给出的字段取默认工况
func LoadString(s string) (types.CycleSpecification, error) {
	return LoadReader(strings.NewReader(s))
}

// LoadReader 加载 YAML 工况。
// 先读取单位，未给出的压力按该单位取默认值。
func LoadReader(r io.Reader) (types.CycleSpecification, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return types.CycleSpecification{}, err
	}
	var head struct {
		Units types.Units `yaml:"units"`
	}
	head.Units = types.DefaultUnits()
	if err := yaml.Unmarshal(data, &head); err != nil {
		return types.CycleSpecification{}, fmt.Errorf("解析工况失败: %w", err)
	}
	spec := types.DefaultSpecificationIn(head.Units)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return types.CycleSpecification{}, fmt.Errorf("解析工况失败: %w", err)
	}
	if err := Validate(spec); err != nil {
		return types.CycleSpecification{}, err
	}
	return spec, nil
}

// LoadFile 从文件加载 YAML 工况
func LoadFile(filename string) (types.CycleSpecification, error) {
	file, err := os.Open(filename)
	if err != nil {
		return types.CycleSpecification{}, err
	}
	defer file.Close()
	return LoadReader(file)
}

// Export 导出 YAML 工况
func Export(w io.Writer, spec types.CycleSpecification) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(spec); err != nil {
		return err
	}
	return enc.Close()
}

// ExportString 导出为字符串
func ExportString(spec types.CycleSpecification) (string, error) {
	var buf bytes.Buffer
	if err := Export(&buf, spec); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExportFile 导出到文件
func ExportFile(filename string, spec types.CycleSpecification) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := Export(file, spec); err != nil {
		return err
	}
	return file.Close()
}
