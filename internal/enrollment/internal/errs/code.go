package errs

var (
	SystemError     = ErrorCode{Code: 519001, Msg: "系统错误"}
	ProjectNotFound = ErrorCode{Code: 519002, Msg: "项目不存在"}
	AlreadyEnrolled = ErrorCode{Code: 519003, Msg: "已经报名过该项目"}
	WindowClosed    = ErrorCode{Code: 519004, Msg: "报名已截止"}
	InvalidInput    = ErrorCode{Code: 519005, Msg: "非法请求"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
