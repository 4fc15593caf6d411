package errs

var (
	SystemError     = ErrorCode{Code: 512001, Msg: "系统错误"}
	ProjectNotFound = ErrorCode{Code: 512002, Msg: "项目不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
