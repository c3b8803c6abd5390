package constant

const (
	WorkTypePlot  = "plot"
	WorkTypeNovel = "novel"
)
