package validator

import (
	"reflect"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	valid "github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
	zhtrans "github.com/go-playground/validator/v10/translations/zh"

	"tradevault/pkg/logger"
)

var (
	once  sync.Once
	trans ut.Translator
)

// LazyInitGinValidator 替换gin内置的validator翻译，language取zh或者en
func LazyInitGinValidator(language string) {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*valid.Validate)
		if !ok {
			logger.Warn("gin validator engine not found, skip translator init")
			return
		}
		// 用label tag作为报错里的字段名
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			label := fld.Tag.Get("label")
			if label == "" {
				return fld.Name
			}
			return label
		})

		zhT := zh.New()
		enT := en.New()
		uni := ut.New(enT, zhT, enT)

		var err error
		switch language {
		case "zh":
			trans, _ = uni.GetTranslator("zh")
			err = zhtrans.RegisterDefaultTranslations(v, trans)
		default:
			trans, _ = uni.GetTranslator("en")
			err = entrans.RegisterDefaultTranslations(v, trans)
		}
		if err != nil {
			logger.Errorf("register validator translations failed: %v", err)
		}
	})
}

// Translate 把校验错误翻译成可读的提示
func Translate(err error) string {
	if errs, ok := err.(valid.ValidationErrors); ok && trans != nil {
		for _, e := range errs {
			return e.Translate(trans)
		}
	}
	return err.Error()
}
