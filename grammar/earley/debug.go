package earley

import "bytes"

func dumpChart(chart *Chart, i int) {
	tracer().Debugf("--- chart %04d ------------------------------------", i)
	for n := 0; n < chart.Len(); n++ {
		tracer().Debugf("[%2d] %s", n+1, chart.At(n))
	}
}

func chartString(chart *Chart) string {
	var b bytes.Buffer
	b.WriteString("{")
	for i := 0; i < chart.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		} else {
			b.WriteString(" ")
		}
		b.WriteString(chart.At(i).String())
	}
	b.WriteString(" }")
	return b.String()
}
