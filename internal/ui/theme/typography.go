package theme

type Typography struct {
	Title   int32
	Button  int32
	Tooltip int32
	Status  int32
	Small   int32
}

var Type = Typography{
	Title:   34,
	Button:  22,
	Tooltip: 20,
	Status:  18,
	Small:   14,
}
