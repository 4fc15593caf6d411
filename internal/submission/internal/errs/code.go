package errs

var (
	SystemError         = ErrorCode{Code: 520001, Msg: "系统错误"}
	EnrollmentNotFound  = ErrorCode{Code: 520002, Msg: "尚未报名该项目"}
	DuplicateSubmission = ErrorCode{Code: 520003, Msg: "已经提交过作品"}
	InvalidDescription  = ErrorCode{Code: 520004, Msg: "作品描述不能为空"}
	SubmissionFinalized = ErrorCode{Code: 520005, Msg: "提交记录已经审核完毕"}
	EmptyFeedback       = ErrorCode{Code: 520006, Msg: "驳回必须填写反馈"}
	SubmissionNotFound  = ErrorCode{Code: 520007, Msg: "提交记录不存在"}
	DeadlinePassed      = ErrorCode{Code: 520008, Msg: "已过提交截止时间"}
	InvalidInput        = ErrorCode{Code: 520009, Msg: "非法请求"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
