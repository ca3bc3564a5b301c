package classifier

import "github.com/yagi-creator/educational-materials-analyzer/internal/model"

// ExtractSubject 正規化済み商品名から科目を抽出する
// 科目表のグループ順に一致を収集し、最初に見つかった科目を返す。
// 学年補正: 中学生なら 算数/数学 → 数学、小学生なら 数学/算数 → 算数
// （「数」は校種をまたいで曖昧なため、学年で科目名を確定させる）。
// どの科目にも一致しなければ その他
func ExtractSubject(normalized string, grade model.Grade) model.Subject {
	var found []model.Subject
	for _, entry := range subjectPatterns {
		if containsAny(normalized, entry.Patterns) {
			found = append(found, entry.Subject)
		}
	}

	if len(found) == 0 {
		return model.SubjectOther
	}

	if grade.IsMiddle() && (contains(found, model.SubjectMath) || contains(found, model.SubjectArith)) {
		return model.SubjectMath
	}
	if grade.IsElementary() && (contains(found, model.SubjectArith) || contains(found, model.SubjectMath)) {
		return model.SubjectArith
	}

	return found[0]
}

func contains(subjects []model.Subject, s model.Subject) bool {
	for _, v := range subjects {
		if v == s {
			return true
		}
	}
	return false
}
