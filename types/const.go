package types

// 数学常量定义
const (
	Sqrt3 = 1.73205080756887729352744634150587236694280525381038062805580697945193301690880 // √3
	Sqrt2 = 1.41421356237309504880168872420969807856967187537694807317667973799073247846211 // √2

	// A 旋转算子 a = e^(j·2π/3)
	A complex128 = complex(-0.5, Sqrt3/2)
	// A2 旋转算子平方 a² = e^(-j·2π/3)
	A2 complex128 = complex(-0.5, -Sqrt3/2)
)
