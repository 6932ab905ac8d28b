package hexlife

import (
	"strconv"

	"hex-life/pkg/core"
)

// Parameters reports the grid dimensions and population for display.
func (u *Universe) Parameters() core.ParameterSnapshot {
	alive := u.Alive()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", u.w),
				intParam("h", "Height", u.h),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				intParam("alive", "Alive", alive),
				intParam("dead", "Dead", len(u.cur)-alive),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
