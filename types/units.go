package types

import (
	"fmt"
	"strings"
)

// PressureUnit 压力单位
type PressureUnit uint8

const (
	KPa PressureUnit = iota // 千帕（默认）
	Pa                      // 帕
	Bar                     // 巴
	MPa                     // 兆帕
)

var pressureUnitName = map[PressureUnit]string{
	KPa: "kPa",
	Pa:  "Pa",
	Bar: "bar",
	MPa: "MPa",
}

// 换算到 kPa 的系数
var pressureUnitFactor = map[PressureUnit]float64{
	KPa: 1,
	Pa:  1e-3,
	Bar: 100,
	MPa: 1000,
}

// String 单位名称
func (u PressureUnit) String() string {
	if name, ok := pressureUnitName[u]; ok {
		return name
	}
	return "Unknown"
}

// ParsePressureUnit 通过名称解析单位，不区分大小写
func ParsePressureUnit(name string) (PressureUnit, error) {
	for u, n := range pressureUnitName {
		if strings.EqualFold(n, name) {
			return u, nil
		}
	}
	return KPa, fmt.Errorf("未知压力单位: %q", name)
}

// MarshalText 编码为名称
func (u PressureUnit) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// UnmarshalText 从名称解码
func (u *PressureUnit) UnmarshalText(text []byte) (err error) {
	*u, err = ParsePressureUnit(string(text))
	return err
}

// Units 物性后端的单位配置，构造时传入，构造后不可变。
// 温度固定为 K，比焓 kJ/kg，比熵 kJ/(kg·K)。
type Units struct {
	Pressure PressureUnit `yaml:"pressure" json:"pressure"`
}

// DefaultUnits 默认单位（kPa）
func DefaultUnits() Units { return Units{Pressure: KPa} }

// ToKPa 将配置单位下的压力换算为 kPa
func (u Units) ToKPa(p float64) float64 { return p * pressureUnitFactor[u.Pressure] }

// FromKPa 将 kPa 换算为配置单位
func (u Units) FromKPa(p float64) float64 { return p / pressureUnitFactor[u.Pressure] }

// ToMPa 将配置单位下的压力换算为 MPa
func (u Units) ToMPa(p float64) float64 { return u.ToKPa(p) / 1000 }

// FromMPa 将 MPa 换算为配置单位
func (u Units) FromMPa(p float64) float64 { return u.FromKPa(p * 1000) }
