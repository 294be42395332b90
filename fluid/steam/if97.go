package steam

import "math"

// IAPWS-IF97 工业用水和水蒸气热力性质公式（区域 1、2、4 及 B23 边界）。
// 压力单位 MPa，温度 K，比焓 kJ/kg，比熵 kJ/(kg·K)。

// 物理常数
const (
	R         = 0.461526 // 水的比气体常数 kJ/(kg·K)
	CriticalT = 647.096  // 临界温度 K
	CriticalP = 22.064   // 临界压力 MPa
	TripleT   = 273.15   // 区域下限温度 K
	MaxT      = 1073.15  // 区域 2 上限温度 K
	MaxP      = 100.0    // 区域 1、2 上限压力 MPa
	Region3T  = 623.15   // 区域 1/3 分界温度 K
)

// 区域 1 系数 (I, J, n)
var region1 = [34]struct {
	i, j int
	n    float64
}{
	{0, -2, 0.14632971213167},
	{0, -1, -0.84548187169114},
	{0, 0, -0.37563603672040e1},
	{0, 1, 0.33855169168385e1},
	{0, 2, -0.95791963387872},
	{0, 3, 0.15772038513228},
	{0, 4, -0.16616417199501e-1},
	{0, 5, 0.81214629983568e-3},
	{1, -9, 0.28319080123804e-3},
	{1, -7, -0.60706301565874e-3},
	{1, -1, -0.18990068218419e-1},
	{1, 0, -0.32529748770505e-1},
	{1, 1, -0.21841717175414e-1},
	{1, 3, -0.52838357969930e-4},
	{2, -3, -0.47184321073267e-3},
	{2, 0, -0.30001780793026e-3},
	{2, 1, 0.47661393906987e-4},
	{2, 3, -0.44141845330846e-5},
	{2, 17, -0.72694996297594e-15},
	{3, -4, -0.31679644845054e-4},
	{3, 0, -0.28270797985312e-5},
	{3, 6, -0.85205128120103e-9},
	{4, -5, -0.22425281908000e-5},
	{4, -2, -0.65171222895601e-6},
	{4, 10, -0.14341729937924e-12},
	{5, -8, -0.40516996860117e-6},
	{8, -11, -0.12734301741641e-8},
	{8, -6, -0.17424871230634e-9},
	{21, -29, -0.68762131295531e-18},
	{23, -31, 0.14478307828521e-19},
	{29, -38, 0.26335781662795e-22},
	{30, -39, -0.11947622640071e-22},
	{31, -40, 0.18228094581404e-23},
	{32, -41, -0.93537087292458e-25},
}

// 区域 2 理想气体部分系数 (J°, n°)
var region2Ideal = [9]struct {
	j int
	n float64
}{
	{0, -0.96927686500217e1},
	{1, 0.10086655968018e2},
	{-5, -0.56087911283020e-2},
	{-4, 0.71452738081455e-1},
	{-3, -0.40710498223928},
	{-2, 0.14240819171444e1},
	{-1, -0.43839511319450e1},
	{2, -0.28408632460772},
	{3, 0.21268463753307e-1},
}

// 区域 2 剩余部分系数 (I, J, n)
var region2Residual = [43]struct {
	i, j int
	n    float64
}{
	{1, 0, -0.17731742473213e-2},
	{1, 1, -0.17834862292358e-1},
	{1, 2, -0.45996013696365e-1},
	{1, 3, -0.57581259083432e-1},
	{1, 6, -0.50325278727930e-1},
	{2, 1, -0.33032641670203e-4},
	{2, 2, -0.18948987516315e-3},
	{2, 4, -0.39392777243355e-2},
	{2, 7, -0.43797295650573e-1},
	{2, 36, -0.26674547914087e-4},
	{3, 0, 0.20481737692309e-7},
	{3, 1, 0.43870667284435e-6},
	{3, 3, -0.32277677238570e-4},
	{3, 6, -0.15033924542148e-2},
	{3, 35, -0.40668253562649e-1},
	{4, 1, -0.78847309559367e-9},
	{4, 2, 0.12790717852285e-7},
	{4, 3, 0.48225372718507e-6},
	{5, 7, 0.22922076337661e-5},
	{6, 3, -0.16714766451061e-10},
	{6, 16, -0.21171472321355e-2},
	{6, 35, -0.23895741934104e2},
	{7, 0, -0.59059564324270e-17},
	{7, 11, -0.12621808899101e-5},
	{7, 25, -0.38946842435739e-1},
	{8, 8, 0.11236237707365e-10},
	{8, 36, -0.82311340897998e1},
	{9, 13, 0.19809712802088e-7},
	{10, 4, 0.10406965210174e-18},
	{10, 10, -0.10234747095929e-12},
	{10, 14, -0.10018179379511e-8},
	{16, 29, -0.80882908646985e-10},
	{16, 50, 0.10693031879409},
	{18, 57, -0.33662250574171},
	{20, 20, 0.89185845355421e-24},
	{20, 35, 0.30629316876232e-12},
	{20, 48, -0.42002467698208e-5},
	{21, 21, -0.59056029685639e-25},
	{22, 53, 0.37835194344060e-5},
	{23, 39, -0.12768608934681e-14},
	{24, 26, 0.73087610595061e-28},
	{24, 40, 0.55414715350778e-16},
	{24, 58, -0.94369707241210e-6},
}

// 区域 4 饱和线系数 n1..n10
var region4 = [10]float64{
	0.11670521452767e4,
	-0.72421316703206e6,
	-0.17073846940092e2,
	0.12020824702470e5,
	-0.32325550322333e7,
	0.14915108613530e2,
	-0.48232657361591e4,
	0.40511340542057e6,
	-0.23855557567849,
	0.65017534844798e3,
}

// B23 边界系数 n1..n5
var b23 = [5]float64{
	0.34805185628969e3,
	-0.11671859879975e1,
	0.10192970039326e-2,
	0.57254459862746e3,
	0.13918839778870e2,
}

// Region1 区域 1（压缩液）的 h、s
func Region1(T, p float64) (h, s float64) {
	pi, tau := p/16.53, 1386/T
	a, b := 7.1-pi, tau-1.222
	var g, gt float64
	for _, c := range region1 {
		pa := math.Pow(a, float64(c.i))
		g += c.n * pa * math.Pow(b, float64(c.j))
		gt += c.n * pa * float64(c.j) * math.Pow(b, float64(c.j-1))
	}
	return R * T * tau * gt, R * (tau*gt - g)
}

// Region2 区域 2（过热蒸汽）的 h、s
func Region2(T, p float64) (h, s float64) {
	pi, tau := p, 540/T
	g0, g0t := math.Log(pi), 0.0
	for _, c := range region2Ideal {
		g0 += c.n * math.Pow(tau, float64(c.j))
		g0t += c.n * float64(c.j) * math.Pow(tau, float64(c.j-1))
	}
	var gr, grt float64
	b := tau - 0.5
	for _, c := range region2Residual {
		pa := math.Pow(pi, float64(c.i))
		gr += c.n * pa * math.Pow(b, float64(c.j))
		grt += c.n * pa * float64(c.j) * math.Pow(b, float64(c.j-1))
	}
	return R * T * tau * (g0t + grt), R * (tau*(g0t+grt) - (g0 + gr))
}

// SaturationPressure 区域 4 饱和压力 p_sat(T)，MPa
func SaturationPressure(T float64) float64 {
	n := region4
	theta := T + n[8]/(T-n[9])
	a := theta*theta + n[0]*theta + n[1]
	b := n[2]*theta*theta + n[3]*theta + n[4]
	c := n[5]*theta*theta + n[6]*theta + n[7]
	return math.Pow(2*c/(-b+math.Sqrt(b*b-4*a*c)), 4)
}

// SaturationTemperature 区域 4 饱和温度 T_sat(p)，K
func SaturationTemperature(p float64) float64 {
	n := region4
	beta := math.Pow(p, 0.25)
	e := beta*beta + n[2]*beta + n[5]
	f := n[0]*beta*beta + n[3]*beta + n[6]
	g := n[1]*beta*beta + n[4]*beta + n[7]
	d := 2 * g / (-f - math.Sqrt(f*f-4*e*g))
	return (n[9] + d - math.Sqrt((n[9]+d)*(n[9]+d)-4*(n[8]+n[9]*d))) / 2
}

// B23Pressure 区域 2/3 边界压力，MPa
func B23Pressure(T float64) float64 {
	return b23[0] + b23[1]*T + b23[2]*T*T
}

// B23Temperature 区域 2/3 边界温度，K
func B23Temperature(p float64) float64 {
	return b23[3] + math.Sqrt((p-b23[4])/b23[2])
}
