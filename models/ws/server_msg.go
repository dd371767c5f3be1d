package wsmodels

type ServerMessage struct {
	ToUserID string      `json:"-"`
	Time     string      `json:"time"`           // время события
	Code     string      `json:"code"`           // код события
	Title    string      `json:"title,omitempty"`
	Msg      string      `json:"msg"`            // текст события
	Link     string      `json:"link,omitempty"` // ссылка для перехода
	Data     interface{} `json:"data,omitempty"` // полезная нагрузка события
}
