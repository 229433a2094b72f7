package instrument

import "phasecalc/types"

// CTRatio 电流互感器变比 Ip/Is
func CTRatio(primary, secondary float64) (float64, error) {
	if err := types.NonZero("secondary current", secondary); err != nil {
		return 0, err
	}
	return types.Finite("CT ratio", primary/secondary)
}

// VTRatio 电压互感器变比 Vp/Vs
func VTRatio(primary, secondary float64) (float64, error) {
	if err := types.NonZero("secondary voltage", secondary); err != nil {
		return 0, err
	}
	return types.Finite("VT ratio", primary/secondary)
}

// TapSetting 继电器抽头整定值 I_relay/CTR
func TapSetting(relayCurrent, ctRatio float64) (float64, error) {
	if err := types.NonZero("CT ratio", ctRatio); err != nil {
		return 0, err
	}
	return types.Finite("tap setting", relayCurrent/ctRatio)
}
