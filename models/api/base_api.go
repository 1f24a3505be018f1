package apimodels

type Response struct {
	Status  string      `json:"status"`            //результат обработки fail/success
	Message string      `json:"message,omitempty"` //сообщение ошибки
	Data    interface{} `json:"data,omitempty"`    //данные ответа
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count"` //общее кол-во записей, учитывая фильтр (если он есть)
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

type Pagination struct {
	Page     int `json:"page"`      // Страница (1,2,3..)
	PageSize int `json:"page_size"` // Записей на странице
}

func (r Pagination) GetPage() (page, pageSize int) {
	page = 1
	pageSize = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.PageSize > 0 {
		pageSize = r.PageSize
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

func NewScrollerResponse(data interface{}, rowCount int64, page, pageSize int) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount: rowCount,
		Page:     page,
		PageSize: pageSize,
	}
}
