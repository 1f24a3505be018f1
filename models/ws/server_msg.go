package wsmodels

// Коды событий воркфлоу, отправляемых в websocket.
const (
	CodeApprovalPending   = "approval_pending"   // очередь согласования дошла до пользователя
	CodeRequestValidated  = "request_validated"  // заявка полностью согласована
	CodeRequestRejected   = "request_rejected"   // заявка отклонена
	CodeMissionValidated  = "mission_validated"  // командировка валидирована
	CodeMissionRejected   = "mission_rejected"   // командировка отклонена
	CodeExpenseReimbursed = "expense_reimbursed" // расходы возмещены
)

type ServerMessage struct {
	ToUserID string `json:"-"`
	Time     string `json:"time"` // время события
	Code     string `json:"code"` // код события
	Msg      string `json:"msg"`  // текст события
}
