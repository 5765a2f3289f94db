package core

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX）
//
// 使用场景：
//   - 校验错误：MISSING_PARAMETER, IDENTICAL_SEEDS, OUT_OF_RANGE_*, SEED_NOT_FOUND
//   - 目录错误：CATALOG_UNAVAILABLE（瞬态，可重试）, NOT_FOUND
//   - 入口错误：UNAUTHENTICATED
type DomainError struct {
	Code    string // 错误代码（如 "SEED_NOT_FOUND"）
	Message string // 错误消息
	Module  string // 模块名称（如 "validate", "catalog"）
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// GetDomainError 获取 DomainError，如果不是则返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr
	}
	return nil
}

// 错误代码常量
const (
	// 校验期错误：直接报告给调用方，不可重试
	ErrorCodeMissingParameter = "MISSING_PARAMETER"  // film_a_id 或 film_b_id 缺失
	ErrorCodeIdenticalSeeds   = "IDENTICAL_SEEDS"    // 两个种子片相同
	ErrorCodeOutOfRangeAlpha  = "OUT_OF_RANGE_ALPHA" // alpha 超出 [0,1]
	ErrorCodeOutOfRangeLimit  = "OUT_OF_RANGE_LIMIT" // limit 超出 [1,50]
	ErrorCodeSeedNotFound     = "SEED_NOT_FOUND"     // 种子片不在目录中

	// 入口错误：外部网关未给出已认证调用方
	ErrorCodeUnauthenticated = "UNAUTHENTICATED"

	// 目录错误
	ErrorCodeCatalogUnavailable = "CATALOG_UNAVAILABLE" // 目录超时/故障，瞬态，可重试
	ErrorCodeNotFound           = "NOT_FOUND"           // 资源不存在
	ErrorCodeNotSupported       = "NOT_SUPPORTED"       // 操作不支持
)

// 模块名称常量
const (
	ModuleValidate = "validate" // 请求校验
	ModuleCatalog  = "catalog"  // 影片目录
	ModuleStore    = "store"    // 存储后端
	ModuleBlend    = "blend"    // 引擎入口
)

// 预定义错误实例

var (
	// ErrUnauthenticated 表示调用方未通过外部认证网关
	ErrUnauthenticated = NewDomainError(ModuleBlend, ErrorCodeUnauthenticated, "blend: caller is not authenticated")

	// ErrIdenticalSeeds 表示两个种子片 ID 相同
	ErrIdenticalSeeds = NewDomainError(ModuleValidate, ErrorCodeIdenticalSeeds, "validate: film_a_id and film_b_id must differ")

	// ErrOutOfRangeAlpha 表示 alpha 超出 [0,1]
	ErrOutOfRangeAlpha = NewDomainError(ModuleValidate, ErrorCodeOutOfRangeAlpha, "validate: alpha must be within [0,1]")

	// ErrOutOfRangeLimit 表示 limit 超出 [1,50]
	ErrOutOfRangeLimit = NewDomainError(ModuleValidate, ErrorCodeOutOfRangeLimit, "validate: limit must be within [1,50]")

	// ErrCatalogNotFound 表示影片不在目录中
	ErrCatalogNotFound = NewDomainError(ModuleCatalog, ErrorCodeNotFound, "catalog: film not found")

	// ErrCatalogUnavailable 表示目录超时或故障（瞬态，调用方可重试）
	ErrCatalogUnavailable = NewDomainError(ModuleCatalog, ErrorCodeCatalogUnavailable, "catalog: backend unavailable")

	// ErrStoreNotFound 表示 key 不存在
	ErrStoreNotFound = NewDomainError(ModuleStore, ErrorCodeNotFound, "store: key not found")

	// ErrStoreNotSupported 表示操作不支持
	ErrStoreNotSupported = NewDomainError(ModuleStore, ErrorCodeNotSupported, "store: operation not supported")
)

// NewMissingParameter 创建参数缺失错误，param 为缺失的参数名。
func NewMissingParameter(param string) *DomainError {
	return NewDomainError(ModuleValidate, ErrorCodeMissingParameter, "validate: missing required parameter "+param)
}

// NewSeedNotFound 创建种子片不存在错误。
func NewSeedNotFound(filmID string) *DomainError {
	return NewDomainError(ModuleValidate, ErrorCodeSeedNotFound, "validate: seed film not found: "+filmID)
}

// 错误检查函数

func isCode(err error, code string) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == code
	}
	return false
}

// IsUnauthenticated 检查错误是否为 UNAUTHENTICATED
func IsUnauthenticated(err error) bool { return isCode(err, ErrorCodeUnauthenticated) }

// IsMissingParameter 检查错误是否为 MISSING_PARAMETER
func IsMissingParameter(err error) bool { return isCode(err, ErrorCodeMissingParameter) }

// IsIdenticalSeeds 检查错误是否为 IDENTICAL_SEEDS
func IsIdenticalSeeds(err error) bool { return isCode(err, ErrorCodeIdenticalSeeds) }

// IsOutOfRangeAlpha 检查错误是否为 OUT_OF_RANGE_ALPHA
func IsOutOfRangeAlpha(err error) bool { return isCode(err, ErrorCodeOutOfRangeAlpha) }

// IsOutOfRangeLimit 检查错误是否为 OUT_OF_RANGE_LIMIT
func IsOutOfRangeLimit(err error) bool { return isCode(err, ErrorCodeOutOfRangeLimit) }

// IsSeedNotFound 检查错误是否为 SEED_NOT_FOUND
func IsSeedNotFound(err error) bool { return isCode(err, ErrorCodeSeedNotFound) }

// IsNotFound 检查错误是否为 NOT_FOUND
func IsNotFound(err error) bool { return isCode(err, ErrorCodeNotFound) }

// IsRetryable 检查错误是否为瞬态错误（目前只有 CATALOG_UNAVAILABLE），
// 调用方可据此决定重试。
func IsRetryable(err error) bool { return isCode(err, ErrorCodeCatalogUnavailable) }
