package service

import apperrors "github.com/CM6156/CoilmasterThailand/backend/pkg/errors"

// ── 业务错误 ──
// Key 为翻译键，Message 为翻译缺失时的默认提示

var (
	// 认证 11xxx
	ErrMissingCredentials = apperrors.New(apperrors.KindValidation, 11001, "required_fields", "필수 정보를 모두 입력해주세요.")
	ErrInvalidCredentials = apperrors.New(apperrors.KindUnauthorized, 11002, "invalid_credentials", "잘못된 로그인 정보입니다.")
	ErrUsernameTooShort   = apperrors.New(apperrors.KindValidation, 11003, "username_min", "아이디를 입력하세요 (3자 이상)")
	ErrUsernameTooLong    = apperrors.New(apperrors.KindValidation, 11004, "error_username_too_long", "아이디는 50자 이하로 입력하세요")
	ErrPasswordTooShort   = apperrors.New(apperrors.KindValidation, 11005, "password_min", "비밀번호를 입력하세요 (6자 이상)")
	ErrPasswordTooLong    = apperrors.New(apperrors.KindValidation, 11006, "error_password_too_long", "비밀번호는 72자 이하로 입력하세요")
	ErrInvalidEmail       = apperrors.New(apperrors.KindValidation, 11007, "error_invalid_email", "이메일 형식이 올바르지 않습니다")
	ErrUsernameTaken      = apperrors.New(apperrors.KindConflict, 11008, "error_username_taken", "이미 존재하는 아이디입니다")
	ErrEmailTaken         = apperrors.New(apperrors.KindConflict, 11009, "error_email_taken", "이미 사용 중인 이메일입니다")
	ErrSessionInvalid     = apperrors.New(apperrors.KindUnauthorized, 11010, "error_session_invalid", "세션이 만료되었습니다. 다시 로그인하세요")

	// 用户 12xxx
	ErrUserNotFound = apperrors.New(apperrors.KindNotFound, 12001, "error_user_not_found", "사용자를 찾을 수 없습니다")

	// 客户 20xxx
	ErrCustomerNameRequired = apperrors.New(apperrors.KindValidation, 20001, "error_customer_name_required", "고객명을 입력해주세요")
	ErrCustomerExists       = apperrors.New(apperrors.KindConflict, 20002, "error_customer_exists", "이미 존재하는 고객명입니다")
	ErrCustomerNotFound     = apperrors.New(apperrors.KindNotFound, 20003, "error_customer_not_found", "고객을 찾을 수 없습니다")

	// 产品 21xxx
	ErrProductNameRequired   = apperrors.New(apperrors.KindValidation, 21001, "error_product_name_required", "제품명과 고객을 입력해주세요")
	ErrProductNotFound       = apperrors.New(apperrors.KindNotFound, 21002, "error_product_not_found", "제품을 찾을 수 없습니다")
	ErrManagerNotFound       = apperrors.New(apperrors.KindNotFound, 21003, "error_manager_not_found", "담당자를 찾을 수 없습니다")
	ErrInvalidShippingStatus = apperrors.New(apperrors.KindValidation, 21004, "error_invalid_shipping_status", "올바르지 않은 운송 상태입니다")
	ErrInvalidShippingDate   = apperrors.New(apperrors.KindValidation, 21005, "error_invalid_date", "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)")

	// 工序 22xxx
	ErrProcessNameRequired = apperrors.New(apperrors.KindValidation, 22001, "error_process_name_required", "공정명과 제품을 입력해주세요")
	ErrInvalidProcessOrder = apperrors.New(apperrors.KindValidation, 22002, "error_invalid_process_order", "공정 순서는 1 이상이어야 합니다")
	ErrProcessOrderExists  = apperrors.New(apperrors.KindConflict, 22003, "error_process_order_exists", "해당 제품에 이미 같은 순서의 공정이 있습니다")
	ErrProcessNotFound     = apperrors.New(apperrors.KindNotFound, 22004, "error_process_not_found", "공정을 찾을 수 없습니다")

	// 设备 23xxx
	ErrEquipmentNameRequired = apperrors.New(apperrors.KindValidation, 23001, "error_equipment_name_required", "설비명을 입력해주세요")
	ErrInvalidCapacity       = apperrors.New(apperrors.KindValidation, 23002, "error_invalid_capacity", "일일 생산능력은 0보다 커야 합니다")
	ErrInvalidOperationCost  = apperrors.New(apperrors.KindValidation, 23003, "error_invalid_operation_cost", "운영비용은 0 이상이어야 합니다")
	ErrEquipmentExists       = apperrors.New(apperrors.KindConflict, 23004, "error_equipment_exists", "이미 존재하는 설비명입니다")
	ErrEquipmentNotFound     = apperrors.New(apperrors.KindNotFound, 23005, "error_equipment_not_found", "설비를 찾을 수 없습니다")

	// 原材料 24xxx
	ErrMaterialNameRequired = apperrors.New(apperrors.KindValidation, 24001, "error_material_name_required", "원자재명을 입력해주세요")
	ErrMaterialUnitRequired = apperrors.New(apperrors.KindValidation, 24002, "error_material_unit_required", "단위를 입력해주세요")
	ErrInvalidMaterialCost  = apperrors.New(apperrors.KindValidation, 24003, "error_invalid_material_cost", "단가는 0보다 커야 합니다")
	ErrMaterialExists       = apperrors.New(apperrors.KindConflict, 24004, "error_material_exists", "이미 존재하는 원자재명입니다")
	ErrMaterialNotFound     = apperrors.New(apperrors.KindNotFound, 24005, "error_material_not_found", "원자재를 찾을 수 없습니다")

	// 生产需求 25xxx
	ErrInvalidRequirement = apperrors.New(apperrors.KindValidation, 25001, "error_invalid_requirement", "수량과 비용은 0 이상이어야 합니다")

	// 通知 26xxx
	ErrNotificationMessageRequired = apperrors.New(apperrors.KindValidation, 26001, "error_notification_message_required", "알림 메시지를 입력해주세요")
	ErrInvalidNotificationType     = apperrors.New(apperrors.KindValidation, 26002, "error_invalid_notification_type", "올바르지 않은 알림 유형입니다")

	// 多语言 27xxx
	ErrTooManyKeys               = apperrors.New(apperrors.KindValidation, 27001, "error_too_many_keys", "한 번에 요청할 수 있는 번역 키는 500개까지입니다")
	ErrTranslationKeysRequired   = apperrors.New(apperrors.KindValidation, 27002, "error_translation_keys_required", "번역 키 배열이 필요합니다")
	ErrTranslationValuesRequired = apperrors.New(apperrors.KindValidation, 27003, "error_translation_values_required", "번역 값을 하나 이상 입력하세요")
)
