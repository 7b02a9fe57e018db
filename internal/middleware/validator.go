package middleware

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"meli_dev_v1_202610/pkg/utils"
)

// SetupValidator 注册自定义校验
// 错误中的字段名使用 json tag；新增 cnpj 校验
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
		_ = v.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
			return utils.ValidCNPJ(fl.Field().String())
		})
	}
}

// ValidationMessage 将绑定错误转为可读信息
func ValidationMessage(err error) string {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err.Error()
	}

	msgs := make([]string, 0, len(ves))
	for _, e := range ves {
		msgs = append(msgs, fieldMessage(e))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s 不能为空", e.Field())
	case "email":
		return fmt.Sprintf("%s 邮箱格式错误", e.Field())
	case "min":
		return fmt.Sprintf("%s 长度不能小于 %s", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s 长度不能大于 %s", e.Field(), e.Param())
	case "cnpj":
		return fmt.Sprintf("%s 不是有效的 CNPJ", e.Field())
	case "url":
		return fmt.Sprintf("%s URL 格式错误", e.Field())
	case "oneof":
		return fmt.Sprintf("%s 必须是 [%s] 之一", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s 校验失败 (%s)", e.Field(), e.Tag())
	}
}
